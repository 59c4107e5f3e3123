package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hnrobert/lumgecos/gecos"
)

type gecosView struct {
	Raw       string   `json:"raw"`
	FullName  *string  `json:"full_name"`
	Room      *string  `json:"room"`
	WorkPhone *string  `json:"work_phone"`
	HomePhone *string  `json:"home_phone"`
	Other     []string `json:"other"`
}

func newGecosView(r gecos.Record) gecosView {
	opt := func(p gecos.Position) *string {
		f, ok := r.Get(p)
		if !ok {
			return nil
		}
		s := f.String()
		return &s
	}
	v := gecosView{
		Raw:       r.String(),
		FullName:  opt(gecos.FullName),
		Room:      opt(gecos.Room),
		WorkPhone: opt(gecos.WorkPhone),
		HomePhone: opt(gecos.HomePhone),
		Other:     make([]string, 0, len(r.Other)),
	}
	for _, f := range r.Other {
		v.Other = append(v.Other, f.String())
	}
	return v
}

func printRecord(w io.Writer, r gecos.Record, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newGecosView(r))
	}
	for p := gecos.Position(0); p < gecos.NumPositions; p++ {
		val := "-"
		if f, ok := r.Get(p); ok {
			val = fmt.Sprintf("%q", f.String())
		}
		if _, err := fmt.Fprintf(w, "%-11s %s\n", p.String()+":", val); err != nil {
			return err
		}
	}
	for i, f := range r.Other {
		if _, err := fmt.Fprintf(w, "%-11s %q\n", fmt.Sprintf("other[%d]:", i), f.String()); err != nil {
			return err
		}
	}
	return nil
}

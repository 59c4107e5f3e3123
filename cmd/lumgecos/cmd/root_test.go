package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GehirnInc/crypt/sha512_crypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnrobert/lumgecos/internal/hostfs"
)

const testPasswd = `root:x:0:0:root:/root:/bin/bash
alice:x:1000:1000:Some Person,Room,Work phone,Home phone,Other 1,Other 2:/home/alice:/bin/bash
bob:x:1001:1001::/home/bob:/bin/sh
`

type env struct {
	root   string
	config string
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "etc"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "etc", "passwd"), []byte(testPasswd), 0644))

	hash, err := sha512_crypt.New().Generate([]byte("s3cret"), []byte("$6$abcdefgh"))
	require.NoError(t, err)
	shadow := "root:*:19000:0:99999:7:::\nalice:" + hash + ":19000:0:99999:7:::\nbob:!:19000::::::\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "etc", "shadow"), []byte(shadow), 0600))

	t.Cleanup(func() { _ = hostfs.SetRoot(hostfs.DefaultRoot) })
	return env{root: dir, config: filepath.Join(dir, "config.yaml")}
}

func (e env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := newRootCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetIn(strings.NewReader(stdin))
	c.SetArgs(append([]string{"--config", e.config, "--root", e.root}, args...))
	err := c.Execute()
	return out.String(), err
}

func (e env) passwd(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(e.root, "etc", "passwd"))
	require.NoError(t, err)
	return string(b)
}

func TestParseCommand(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "", "parse", ",,,,x")
	require.NoError(t, err)
	assert.Contains(t, out, "full-name:  -")
	assert.Contains(t, out, `other[0]:   "x"`)

	out, err = e.run(t, "", "parse", "--json", "a,b")
	require.NoError(t, err)
	var v gecosView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "a,b", v.Raw)
	require.NotNil(t, v.Room)
	assert.Equal(t, "b", *v.Room)
	assert.Nil(t, v.WorkPhone)
	assert.Empty(t, v.Other)

	_, err = e.run(t, "", "parse", "a:b,c")
	assert.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "", "show", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, `full-name:  "Some Person"`)
	assert.Contains(t, out, `other[1]:   "Other 2"`)

	_, err = e.run(t, "", "show", "mallory")
	assert.ErrorContains(t, err, "user not found")
}

func TestListCommand(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Some Person")
	assert.NotContains(t, out, "root")

	out, err = e.run(t, "", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "root")
}

func TestSetCommand(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "", "set", "alice", "--full-name", "Another name", "--room", "")
	require.NoError(t, err)
	assert.Equal(t, "Another name,,Work phone,Home phone,Other 1,Other 2\n", out)
	assert.Contains(t, e.passwd(t), "alice:x:1000:1000:Another name,,Work phone,Home phone,Other 1,Other 2:/home/alice:/bin/bash\n")

	out, err = e.run(t, "", "set", "alice", "--other", "mail@example.org")
	require.NoError(t, err)
	assert.Equal(t, "Another name,,Work phone,Home phone,mail@example.org\n", out)

	out, err = e.run(t, "", "set", "alice", "--clear-other", "--home-phone", "")
	require.NoError(t, err)
	// The record still spells out all four positions it was parsed with.
	assert.Equal(t, "Another name,,Work phone,\n", out)

	out, err = e.run(t, "", "set", "bob", "--work-phone", "555")
	require.NoError(t, err)
	assert.Equal(t, ",,555\n", out)
}

func TestSetCommandRejects(t *testing.T) {
	e := newEnv(t)
	before := e.passwd(t)

	_, err := e.run(t, "", "set", "alice", "--full-name", "x,y")
	assert.ErrorContains(t, err, "forbidden character")

	_, err = e.run(t, "", "set", "alice", "--other", "a", "--clear-other")
	assert.ErrorContains(t, err, "mutually exclusive")

	require.NoError(t, os.WriteFile(e.config, []byte("strict_chfn: true\n"), 0644))
	_, err = e.run(t, "", "set", "alice", "--full-name", `Say "hi"`)
	assert.ErrorContains(t, err, "forbidden character")

	assert.Equal(t, before, e.passwd(t))
}

func TestSetCommandPassword(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "wrong\n", "set", "alice", "--password-stdin", "--room", "R2")
	assert.ErrorContains(t, err, "Invalid username or password.")

	_, err = e.run(t, "x\n", "set", "bob", "--password-stdin", "--room", "R2")
	assert.ErrorContains(t, err, "This account is locked.")

	out, err := e.run(t, "s3cret\n", "set", "alice", "--password-stdin", "--room", "R2")
	require.NoError(t, err)
	assert.Equal(t, "Some Person,R2,Work phone,Home phone,Other 1,Other 2\n", out)
}

func TestConfigCommand(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "config", "set", "strict-chfn", "true")
	require.NoError(t, err)
	_, err = e.run(t, "", "config", "set", "min-uid", "0")
	require.NoError(t, err)

	out, err := e.run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "strict_chfn: true")
	assert.Contains(t, out, "min_uid: 0")

	_, err = e.run(t, "", "config", "set", "colour", "on")
	assert.ErrorContains(t, err, "unknown config key")

	// The stored setting now applies to set and list.
	_, err = e.run(t, "", "set", "alice", "--room", "a=b")
	assert.ErrorContains(t, err, "forbidden character")
	out, err = e.run(t, "", "--no-color", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "root")
	assert.NotContains(t, out, "\033[")
}

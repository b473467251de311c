package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	cmd := rootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}

const customerSource = `package com.shop;

public class Customer {
    private double total;

    public double total() {
        return total;
    }
}
`

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	location := filepath.Join(dir, "shop.smty")
	source := filepath.Join(dir, "Customer.java")
	require.NoError(t, os.WriteFile(source, []byte(customerSource), 0644))

	output, err := execute("new", location, "--name", "Shop")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(output))
	_, err = execute("new", location)
	assert.Error(t, err)

	output, err = execute("diagram", location, "class", "Domain")
	require.NoError(t, err)
	assert.Equal(t, "DIAGRAM#1\n", output)
	_, err = execute("diagram", location, "timeline")
	assert.Error(t, err)

	output, err = execute("import", location, "DIAGRAM#1", source)
	require.NoError(t, err)
	assert.Equal(t, "CLASS#1\n", output)

	output, err = execute("verify", location)
	require.NoError(t, err)
	assert.Equal(t, location+": ok\n", output)

	output, err = execute("inspect", location)
	require.NoError(t, err)
	assert.Contains(t, output, "name: Shop")
	assert.Contains(t, output, "kind: Class")
	assert.Contains(t, output, "elements: 3")

	output, err = execute("checksum", location)
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{16}\n$`, output)

	target := filepath.Join(dir, "src")
	output, err = execute("generate", location, target)
	require.NoError(t, err)
	assert.Equal(t, "com/shop/Customer.java\n", output)
	generated, err := os.ReadFile(filepath.Join(target, "com", "shop", "Customer.java"))
	require.NoError(t, err)
	assert.Contains(t, string(generated), "public double total() {")

	output, err = execute("export", location)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, "<project "))

	content, err := os.ReadFile(location)
	require.NoError(t, err)
	tampered := strings.Replace(string(content), ` format="v1.0.0"`, "", 1)
	require.NoError(t, os.WriteFile(location, []byte(tampered), 0644))
	output, err = execute("verify", location)
	assert.Error(t, err)
	assert.Contains(t, output, "-<project ")
	assert.Contains(t, output, `+<project `)
}

func TestLineDiff(t *testing.T) {
	assert.Equal(t, "", lineDiff("a\nb\n", "a\nb\n"))
	assert.Equal(t, "-b\n+c\n", lineDiff("a\nb\n", "a\nc\n"))
	assert.Equal(t, "+d\n", lineDiff("a\n", "a\nd"))
}

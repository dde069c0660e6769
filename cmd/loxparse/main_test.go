package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writeSource(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runMain(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	status := _main(append([]string{COMMAND_NAME, "-no-color"}, args...), &out, &errOut)
	return status, out.String(), errOut.String()
}

func TestMainPrintsTree(t *testing.T) {
	path := writeSource(t, "main.lox", "var a = 1 + 2 * 3;\nprint a;\n")

	status, out, errOut := runMain(path)
	assert.Equal(t, 0, status)
	assert.Equal(t, "(var a (+ 1 (* 2 3)))\n(print a)\n", out)
	assert.Empty(t, errOut)
}

func TestMainPrintsTreesInOrder(t *testing.T) {
	paths := []string{
		writeSource(t, "a.lox", "print 1;"),
		writeSource(t, "b.lox", "print 2;"),
		writeSource(t, "c.lox", "print 3;"),
	}

	status, out, _ := runMain(paths...)
	assert.Equal(t, 0, status)
	assert.Equal(t, strings.Join([]string{
		"// " + paths[0], "(print 1)",
		"// " + paths[1], "(print 2)",
		"// " + paths[2], "(print 3)",
	}, "\n")+"\n", out)
}

func TestMainJSON(t *testing.T) {
	path := writeSource(t, "main.lox", "var a = 1 + 2;\nprint -a;\n")

	status, out, _ := runMain("-json", path)
	require.Equal(t, 0, status)
	require.True(t, gjson.Valid(out))

	assert.Equal(t, int64(2), gjson.Get(out, "statements.#").Int())
	assert.Equal(t, "a", gjson.Get(out, "statements.0.VarDeclaration.name").String())
	assert.Equal(t, "Add", gjson.Get(out, "statements.0.VarDeclaration.initializer.Binary.operator").String())
	assert.Equal(t, float64(2), gjson.Get(out, "statements.0.VarDeclaration.initializer.Binary.right.Literal.Number").Float())
	assert.Equal(t, "Minus", gjson.Get(out, "statements.1.Print.Unary.operator").String())
	assert.Equal(t, "a", gjson.Get(out, "statements.1.Print.Unary.operand.Variable").String())
}

func TestMainYAML(t *testing.T) {
	path := writeSource(t, "main.lox", "print 1;")

	status, out, _ := runMain("-yaml", path)
	assert.Equal(t, 0, status)
	assert.True(t, strings.HasPrefix(out, "---\n"))
	assert.Contains(t, out, "statements:")
	assert.Contains(t, out, "Print:")
	assert.Contains(t, out, "Number: 1")
}

func TestMainParseFailure(t *testing.T) {
	path := writeSource(t, "bad.lox", "print 1;\nvar = 42;\n")

	status, out, errOut := runMain(path)
	assert.Equal(t, PARSE_FAILURE_STATUS_CODE, status)
	assert.Empty(t, out)
	assert.Equal(t, path+":2:5: syntax error: Expect variable name.\n"+
		"    var = 42;\n"+
		"        ^\n"+
		"    expected identifier\n", errOut)
}

func TestMainRecover(t *testing.T) {
	path := writeSource(t, "bad.lox", "print ;\nvar = 1;\nprint 2;\n")

	status, _, errOut := runMain(path)
	assert.Equal(t, PARSE_FAILURE_STATUS_CODE, status)
	assert.Equal(t, 1, strings.Count(errOut, "syntax error"))

	status, _, errOut = runMain("-recover", path)
	assert.Equal(t, PARSE_FAILURE_STATUS_CODE, status)
	assert.Equal(t, 2, strings.Count(errOut, "syntax error"))
	assert.Contains(t, errOut, path+":1:7: syntax error: Expect expression.")
	assert.Contains(t, errOut, path+":2:5: syntax error: Expect variable name.")
}

func TestMainGoodAndBadFiles(t *testing.T) {
	good := writeSource(t, "good.lox", "print 1;")
	bad := writeSource(t, "bad.lox", "print 1")

	status, out, errOut := runMain(good, bad)
	assert.Equal(t, PARSE_FAILURE_STATUS_CODE, status)
	assert.Equal(t, "// "+good+"\n(print 1)\n", out)
	assert.Contains(t, errOut, bad+":1:8: syntax error: Expect ';' after value.")
}

func TestMainMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.lox")

	status, _, errOut := runMain(missing)
	assert.Equal(t, IO_FAILURE_STATUS_CODE, status)
	assert.Contains(t, errOut, missing)
}

func TestMainUsage(t *testing.T) {
	path := writeSource(t, "main.lox", "print 1;")

	status, _, errOut := runMain("-json", "-yaml", path)
	assert.Equal(t, USAGE_STATUS_CODE, status)
	assert.Contains(t, errOut, "-json and -yaml cannot be used together")

	status, _, errOut = runMain("-unknown", path)
	assert.Equal(t, USAGE_STATUS_CODE, status)
	assert.Contains(t, errOut, "Usage: loxparse")

	status, _, _ = runMain("-h")
	assert.Equal(t, 0, status)
}

func TestMainVerboseLogs(t *testing.T) {
	path := writeSource(t, "main.lox", "print 1;")

	status, _, errOut := runMain("-v", path)
	assert.Equal(t, 0, status)
	assert.Contains(t, errOut, "parsed file")
	assert.Contains(t, errOut, "parsed program")

	status, _, errOut = runMain(path)
	assert.Equal(t, 0, status)
	assert.Empty(t, errOut)
}

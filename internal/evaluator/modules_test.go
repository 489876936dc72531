package evaluator

import (
	"os"
	"path/filepath"
	"testing"

	"newt/internal/object"
)

func testStringResult(t *testing.T, input, expected string) {
	t.Helper()
	result := testEval(t, input)
	str, ok := object.Unwrap(result).(*object.String)
	if !ok {
		t.Fatalf("input %q: not a string, got %T (%s)", input, result, result.Inspect())
	}
	if str.Value != expected {
		t.Errorf("input %q: expected %q, got %q", input, expected, str.Value)
	}
}

func testInspectResult(t *testing.T, input, expected string) {
	t.Helper()
	result := testEval(t, input)
	if object.IsError(result) {
		t.Fatalf("input %q: %s", input, result.Inspect())
	}
	if got := result.Inspect(); got != expected {
		t.Errorf("input %q: expected %s, got %s", input, expected, got)
	}
}

func TestArrayModuleNonMutatingOps(t *testing.T) {
	testNumberObject(t, testEval(t, "import array\narray.indexOf([5, 6, 7], 6)"), 1)
	testNumberObject(t, testEval(t, "import array\narray.indexOf([5, 6], 9)"), -1)
	testNumberObject(t, testEval(t, "import array\narray.get([5, 6], 1)"), 6)
	testInspectResult(t, "import array\narray.concat([1], [2, 3])", "[1, 2, 3]")
	testInspectResult(t, "import array\narray.slice([1, 2, 3, 4], 1, 3)", "[2, 3]")
	testErrorKind(t, testEval(t, "import array\narray.slice([1], 0, 5)"), object.IndexOutOfBoundsError)
	testErrorKind(t, testEval(t, "import array\narray.get([1], 5)"), object.IndexOutOfBoundsError)
}

func TestArrayModulePlainArraysGetCopies(t *testing.T) {
	// without a ref the op works on a copy and returns the new array
	env := object.NewEnvironment()
	testEvalEnv(t, "import array", env)
	testEvalEnv(t, "let a = [1, 2]", env)
	result := testEvalEnv(t, "array.push(a, 3)", env)
	if got := result.Inspect(); got != "[1, 2, 3]" {
		t.Errorf("push result wrong. got=%s", got)
	}
	testBooleanObject(t, testEvalEnv(t, "a == [1, 2]", env), true)
}

func TestArrayModuleReverseAndSort(t *testing.T) {
	testInspectResult(t, "import array\narray.reverse([1, 2, 3])", "[3, 2, 1]")
	testInspectResult(t, "import array\narray.sort([3, 1, 2])", "[1, 2, 3]")
	testInspectResult(t, `import array
array.sort(["b", "a", "c"])`, "[a, b, c]")
	testErrorKind(t, testEval(t, `import array
array.sort([1, "a"])`), object.TypeError)

	input := `
import array
let r = ref([3, 1, 2])
array.sort(r)
r == [1, 2, 3]`
	testBooleanObject(t, testEval(t, input), true)
}

func TestStringsModule(t *testing.T) {
	testStringResult(t, `import strings
strings.upper("hi")`, "HI")
	testStringResult(t, `import strings
strings.lower("HI")`, "hi")
	testStringResult(t, `import strings
strings.trim("  x  ")`, "x")
	testStringResult(t, `import strings
strings.replace("a-b-c", "-", "+")`, "a+b+c")
	testStringResult(t, `import strings
strings.substring("héllo", 1, 3)`, "él")
	testStringResult(t, `import strings
strings.repeat("ab", 3)`, "ababab")
	testStringResult(t, `import strings
strings.join(["a", "b"], "-")`, "a-b")

	testInspectResult(t, `import strings
strings.split("a,b,c", ",")`, "[a, b, c]")
	testInspectResult(t, `import strings
strings.chars("ab")`, "[a, b]")

	testBooleanObject(t, testEval(t, `import strings
strings.contains("abc", "b")`), true)
	testBooleanObject(t, testEval(t, `import strings
strings.startsWith("abc", "ab")`), true)
	testBooleanObject(t, testEval(t, `import strings
strings.endsWith("abc", "ab")`), false)

	testNumberObject(t, testEval(t, `import strings
strings.indexOf("héllo", "llo")`), 2)
	testNumberObject(t, testEval(t, `import strings
strings.indexOf("abc", "z")`), -1)
}

func TestMathModule(t *testing.T) {
	testNumberObject(t, testEval(t, "import math\nmath.abs(-3)"), 3)
	testNumberObject(t, testEval(t, "import math\nmath.floor(2.7)"), 2)
	testNumberObject(t, testEval(t, "import math\nmath.ceil(2.1)"), 3)
	testNumberObject(t, testEval(t, "import math\nmath.round(2.5)"), 3)
	testNumberObject(t, testEval(t, "import math\nmath.sqrt(16)"), 4)
	testNumberObject(t, testEval(t, "import math\nmath.pow(2, 10)"), 1024)
	testNumberObject(t, testEval(t, "import math\nmath.min(2, -1)"), -1)
	testNumberObject(t, testEval(t, "import math\nmath.max(2, -1)"), 2)

	testErrorKind(t, testEval(t, "import math\nmath.sqrt(-1)"), object.TypeError)
	testErrorKind(t, testEval(t, "import math\nmath.abs(1, 2)"), object.ArityMismatchError)

	pi := testEval(t, "import math\nmath.pi()")
	testNumberObject(t, pi, 3.141592653589793)
}

func TestStatModule(t *testing.T) {
	testNumberObject(t, testEval(t, "import stat\nstat.sum([1, 2, 3])"), 6)
	testNumberObject(t, testEval(t, "import stat\nstat.mean([1, 2, 3])"), 2)
	testNumberObject(t, testEval(t, "import stat\nstat.median([3, 1, 2])"), 2)
	testNumberObject(t, testEval(t, "import stat\nstat.median([4, 1, 2, 3])"), 2.5)
	testNumberObject(t, testEval(t, "import stat\nstat.min([3, 1, 2])"), 1)
	testNumberObject(t, testEval(t, "import stat\nstat.max([3, 1, 2])"), 3)
	testNumberObject(t, testEval(t, "import stat\nstat.variance([2, 4, 4, 4, 5, 5, 7, 9])"), 4)
	testNumberObject(t, testEval(t, "import stat\nstat.stdev([2, 4, 4, 4, 5, 5, 7, 9])"), 2)

	testErrorKind(t, testEval(t, "import stat\nstat.mean([])"), object.TypeError)
	testErrorKind(t, testEval(t, `import stat
stat.sum([1, "a"])`), object.TypeError)
}

func TestMatrixModule(t *testing.T) {
	testInspectResult(t, "import matrix\nmatrix.zeros(2, 3)", "[[0, 0, 0], [0, 0, 0]]")
	testInspectResult(t, "import matrix\nmatrix.identity(2)", "[[1, 0], [0, 1]]")
	testInspectResult(t, "import matrix\nmatrix.shape([[1, 2, 3], [4, 5, 6]])", "[2, 3]")
	testInspectResult(t, "import matrix\nmatrix.add([[1, 2]], [[3, 4]])", "[[4, 6]]")
	testInspectResult(t, "import matrix\nmatrix.sub([[3, 4]], [[1, 2]])", "[[2, 2]]")
	testInspectResult(t, "import matrix\nmatrix.scale([[1, 2]], 3)", "[[3, 6]]")
	testInspectResult(t, "import matrix\nmatrix.transpose([[1, 2], [3, 4]])", "[[1, 3], [2, 4]]")
	testInspectResult(t,
		"import matrix\nmatrix.mul([[1, 2], [3, 4]], [[5, 6], [7, 8]])",
		"[[19, 22], [43, 50]]")

	testNumberObject(t, testEval(t, "import matrix\nmatrix.dot([1, 2, 3], [4, 5, 6])"), 32)
	testNumberObject(t, testEval(t, "import matrix\nmatrix.norm([3, 4])"), 5)

	testErrorKind(t, testEval(t, "import matrix\nmatrix.add([[1]], [[1, 2]])"), object.TypeError)
	testErrorKind(t, testEval(t, "import matrix\nmatrix.mul([[1, 2]], [[1, 2]])"), object.TypeError)
	testErrorKind(t, testEval(t, "import matrix\nmatrix.shape([[1], [2, 3]])"), object.TypeError)
	testErrorKind(t, testEval(t, "import matrix\nmatrix.dot([1], [1, 2])"), object.TypeError)
}

func TestPathModule(t *testing.T) {
	testStringResult(t, `import path
path.join("a", "b", "c.txt")`, filepath.Join("a", "b", "c.txt"))
	testStringResult(t, `import path
path.base("/x/y/z.txt")`, "z.txt")
	testStringResult(t, `import path
path.dir("/x/y/z.txt")`, filepath.Dir("/x/y/z.txt"))
	testStringResult(t, `import path
path.ext("/x/y/z.txt")`, ".txt")
}

func TestFsModule(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.txt")

	env := object.NewEnvironment()
	testEvalEnv(t, "import fs", env)

	run := func(input string) object.Object {
		t.Helper()
		result := testEvalEnv(t, input, env)
		if object.IsError(result) {
			t.Fatalf("input %q: %s", input, result.Inspect())
		}
		return result
	}

	run(`fs.writeFile("` + file + `", "hello")`)
	run(`fs.appendFile("` + file + `", " world")`)

	content := run(`fs.readFile("` + file + `")`)
	if content.Inspect() != "hello world" {
		t.Errorf("readFile wrong. got=%q", content.Inspect())
	}

	testBooleanObject(t, run(`fs.exists("`+file+`")`), true)
	testBooleanObject(t, run(`fs.exists("`+filepath.Join(dir, "nope")+`")`), false)

	sub := filepath.Join(dir, "sub")
	run(`fs.mkdir("` + sub + `")`)
	if st, err := os.Stat(sub); err != nil || !st.IsDir() {
		t.Errorf("mkdir did not create directory: %v", err)
	}

	listing := run(`fs.listDir("` + dir + `")`)
	if listing.Inspect() != "[out.txt, sub]" {
		t.Errorf("listDir wrong. got=%s", listing.Inspect())
	}

	run(`fs.remove("` + file + `")`)
	testBooleanObject(t, run(`fs.exists("`+file+`")`), false)

	result := testEvalEnv(t, `fs.readFile("`+file+`")`, env)
	testErrorKind(t, result, object.IOError)
}

package internal

import "testing"

func TestResolverLocalReadInOwnInitializerIsAnError(t *testing.T) {
	checkCompileError(t, `
		var a = "outer";
		{
			var a = a;
		}
	`, errLocalReadInOwnInitializer.Error())
}

func TestResolverRedeclaringLocalInSameBlockOverwrites(t *testing.T) {
	// Per the language's scoping rules, this shadows/overwrites rather
	// than erroring.
	checkStatements(t, `
		var a = "first";
		var inner;
		{
			var a = "second";
			var a = "third";
			inner = a;
		}
	`, `inner + " " + a`, `third first`)
}

func TestResolverReturnOutsideFunctionIsAnError(t *testing.T) {
	checkCompileError(t, `return 1;`, errReturnOutsideFunction.Error())
}

func TestResolverReturnValueFromInitializerIsAnError(t *testing.T) {
	checkCompileError(t, `
		class Foo {
			init() {
				return 1;
			}
		}
	`, errReturnValueFromInitializer.Error())
}

func TestResolverBareReturnFromInitializerIsFine(t *testing.T) {
	checkStatements(t, `
		class Foo {
			init() {
				this.ready = true;
				return;
			}
		}
		var f = Foo();
	`, "f.ready", "true")
}

func TestResolverThisOutsideClassIsAnError(t *testing.T) {
	checkCompileError(t, `print this;`, errThisOutsideClass.Error())
}

func TestResolverSuperOutsideClassIsAnError(t *testing.T) {
	checkCompileError(t, `print super.foo;`, errSuperOutsideClass.Error())
}

func TestResolverSuperWithoutSuperclassIsAnError(t *testing.T) {
	checkCompileError(t, `
		class Foo {
			bar() {
				super.bar();
			}
		}
	`, errSuperWithoutSuperclass.Error())
}

func TestResolverClassCannotInheritFromItself(t *testing.T) {
	checkCompileError(t, `class Foo < Foo {}`, errClassInheritsFromItself.Error())
}

func TestResolverDepthMatchesEnclosingBlock(t *testing.T) {
	// A use at depth d must read the d-th enclosing environment's slot,
	// not the global one shadowed by it.
	checkStatements(t, `
		var a = "global";
		fun outer() {
			var a = "outer";
			fun inner() {
				return a;
			}
			a = "outer-changed";
			var result = inner();
			return result;
		}
	`, `outer()`, `outer-changed`)
}

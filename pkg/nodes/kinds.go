package nodes

// Kind identifies the syntactic variant of a node. Every concrete node type
// reports exactly one kind, and two nodes can only compare equal when their
// kinds match.
type Kind string

const (
	KindEmpty Kind = "Empty"

	// Scoped definitions.
	KindModule           Kind = "Module"
	KindFunctionDef      Kind = "FunctionDef"
	KindAsyncFunctionDef Kind = "AsyncFunctionDef"
	KindClassDef         Kind = "ClassDef"
	KindLambda           Kind = "Lambda"
	KindArguments        Kind = "Arguments"
	KindParameter        Kind = "Parameter"
	KindDecorators       Kind = "Decorators"

	// Statements.
	KindIf            Kind = "If"
	KindFor           Kind = "For"
	KindAsyncFor      Kind = "AsyncFor"
	KindWhile         Kind = "While"
	KindWith          Kind = "With"
	KindAsyncWith     Kind = "AsyncWith"
	KindWithItem      Kind = "WithItem"
	KindTryExcept     Kind = "TryExcept"
	KindTryFinally    Kind = "TryFinally"
	KindExceptHandler Kind = "ExceptHandler"
	KindRaise         Kind = "Raise"
	KindReturn        Kind = "Return"
	KindAssert        Kind = "Assert"
	KindAssign        Kind = "Assign"
	KindAugAssign     Kind = "AugAssign"
	KindDelete        Kind = "Delete"
	KindExpr          Kind = "Expr"
	KindGlobal        Kind = "Global"
	KindNonlocal      Kind = "Nonlocal"
	KindImport        Kind = "Import"
	KindImportFrom    Kind = "ImportFrom"
	KindPass          Kind = "Pass"
	KindBreak         Kind = "Break"
	KindContinue      Kind = "Continue"
	KindPrint         Kind = "Print"

	// Expressions.
	KindName         Kind = "Name"
	KindAssignName   Kind = "AssignName"
	KindDelName      Kind = "DelName"
	KindAttribute    Kind = "Attribute"
	KindAssignAttr   Kind = "AssignAttr"
	KindDelAttr      Kind = "DelAttr"
	KindConst        Kind = "Const"
	KindNameConstant Kind = "NameConstant"
	KindCall         Kind = "Call"
	KindKeyword      Kind = "Keyword"
	KindStarred      Kind = "Starred"
	KindBinOp        Kind = "BinOp"
	KindBoolOp       Kind = "BoolOp"
	KindUnaryOp      Kind = "UnaryOp"
	KindCompare      Kind = "Compare"
	KindIfExp        Kind = "IfExp"
	KindDict         Kind = "Dict"
	KindDictUnpack   Kind = "DictUnpack"
	KindList         Kind = "List"
	KindSet          Kind = "Set"
	KindTuple        Kind = "Tuple"
	KindSubscript    Kind = "Subscript"
	KindIndex        Kind = "Index"
	KindSlice        Kind = "Slice"
	KindExtSlice     Kind = "ExtSlice"
	KindAwait        Kind = "Await"
	KindYield        Kind = "Yield"
	KindYieldFrom    Kind = "YieldFrom"
	KindEllipsis     Kind = "Ellipsis"

	// Comprehensions.
	KindComprehension Kind = "Comprehension"
	KindListComp      Kind = "ListComp"
	KindSetComp       Kind = "SetComp"
	KindDictComp      Kind = "DictComp"
	KindGeneratorExp  Kind = "GeneratorExp"
)

// Dialect selects between modern and legacy Python scoping and syntax rules
// where the two differ.
type Dialect int

const (
	// Py3 is the default dialect: comprehensions of every flavor introduce
	// their own scope.
	Py3 Dialect = iota
	// Py2 is the legacy dialect: list comprehensions leak into the
	// enclosing scope and the print statement exists.
	Py2
)

package ast

// The Kind discriminator of every concrete node type. These tags are part of
// the serialized form and must stay stable.
const (
	KindCompilationUnit Kind = "CompilationUnit"
	KindIdentifier      Kind = "Identifier"

	KindClassDeclaration         Kind = "ClassDeclaration"
	KindInterfaceDeclaration     Kind = "InterfaceDeclaration"
	KindEnumDeclaration          Kind = "EnumDeclaration"
	KindTriggerDeclaration       Kind = "TriggerDeclaration"
	KindMethodDeclaration        Kind = "MethodDeclaration"
	KindParameterDeclaration     Kind = "ParameterDeclaration"
	KindFieldDeclaration         Kind = "FieldDeclaration"
	KindPropertyDeclaration      Kind = "PropertyDeclaration"
	KindLocalVariableDeclaration Kind = "LocalVariableDeclaration"

	KindKeywordModifier           Kind = "KeywordModifier"
	KindAnnotationModifier        Kind = "AnnotationModifier"
	KindAnnotationArgument        Kind = "AnnotationArgument"
	KindExpressionAnnotationValue Kind = "ExpressionAnnotationValue"
	KindNestedAnnotationValue     Kind = "NestedAnnotationValue"
	KindArrayAnnotationValue      Kind = "ArrayAnnotationValue"

	KindLiteralExpression     Kind = "LiteralExpression"
	KindBinaryExpression      Kind = "BinaryExpression"
	KindUnaryExpression       Kind = "UnaryExpression"
	KindAssignExpression      Kind = "AssignExpression"
	KindCallExpression        Kind = "CallExpression"
	KindFieldAccessExpression Kind = "FieldAccessExpression"
	KindArrayAccessExpression Kind = "ArrayAccessExpression"
	KindCastExpression        Kind = "CastExpression"
	KindNewExpression         Kind = "NewExpression"
	KindTernaryExpression     Kind = "TernaryExpression"
	KindThisExpression        Kind = "ThisExpression"
	KindSuperExpression       Kind = "SuperExpression"
	KindVariableExpression    Kind = "VariableExpression"
	KindTypeRefExpression     Kind = "TypeRefExpression"
	KindInstanceOfExpression  Kind = "InstanceOfExpression"
	KindSoqlExpression        Kind = "SoqlExpression"
	KindSoslExpression        Kind = "SoslExpression"

	KindBlockStatement               Kind = "BlockStatement"
	KindExpressionStatement          Kind = "ExpressionStatement"
	KindIfStatement                  Kind = "IfStatement"
	KindSwitchStatement              Kind = "SwitchStatement"
	KindWhenValueClause              Kind = "WhenValueClause"
	KindWhenTypeClause               Kind = "WhenTypeClause"
	KindWhenElseClause               Kind = "WhenElseClause"
	KindForStatement                 Kind = "ForStatement"
	KindEnhancedForStatement         Kind = "EnhancedForStatement"
	KindWhileStatement               Kind = "WhileStatement"
	KindDoWhileStatement             Kind = "DoWhileStatement"
	KindTryStatement                 Kind = "TryStatement"
	KindCatchClause                  Kind = "CatchClause"
	KindReturnStatement              Kind = "ReturnStatement"
	KindThrowStatement               Kind = "ThrowStatement"
	KindBreakStatement               Kind = "BreakStatement"
	KindContinueStatement            Kind = "ContinueStatement"
	KindRunAsStatement               Kind = "RunAsStatement"
	KindVariableDeclarationStatement Kind = "VariableDeclarationStatement"
	KindDmlStatement                 Kind = "DmlStatement"

	KindConstructorInitializer Kind = "ConstructorInitializer"
	KindValuesInitializer      Kind = "ValuesInitializer"
	KindMapInitializer         Kind = "MapInitializer"
	KindSizedArrayInitializer  Kind = "SizedArrayInitializer"
)

package obslog

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"go.uber.org/zap"
)

// TracingVisitor logs every event name it receives through logger, at
// debug level, for spec.md §6's print_parser_visits /
// --debug-parser-visits. It never itself resolves or declares anything;
// wrap it alongside the real analyzer with ast.MultiVisitor so both see
// the same event stream.
type TracingVisitor struct {
	logger *zap.SugaredLogger
}

var _ ast.Visitor = (*TracingVisitor)(nil)

// NewTracingVisitor returns a TracingVisitor that logs through logger.
func NewTracingVisitor(logger *zap.SugaredLogger) *TracingVisitor {
	return &TracingVisitor{logger: logger}
}

func (t *TracingVisitor) log(event string) { t.logger.Debugw("parser_visit", "event", event) }

func (t *TracingVisitor) VisitVariableDeclaration(name string, kind ast.DeclarationKind, flags ast.DeclarationFlags, rng source.Range) {
	t.logger.Debugw("parser_visit", "event", "visit_variable_declaration", "name", name, "kind", kind.String())
}
func (t *TracingVisitor) VisitVariableUse(name string, rng source.Range) {
	t.logger.Debugw("parser_visit", "event", "visit_variable_use", "name", name)
}
func (t *TracingVisitor) VisitVariableTypeUse(name string, rng source.Range) {
	t.logger.Debugw("parser_visit", "event", "visit_variable_type_use", "name", name)
}
func (t *TracingVisitor) VisitVariableNamespaceUse(name string, rng source.Range) {
	t.logger.Debugw("parser_visit", "event", "visit_variable_namespace_use", "name", name)
}
func (t *TracingVisitor) VisitVariableAssignment(name string, rng source.Range) {
	t.logger.Debugw("parser_visit", "event", "visit_variable_assignment", "name", name)
}
func (t *TracingVisitor) VisitVariableDeleteUse(name string, rng source.Range) {
	t.logger.Debugw("parser_visit", "event", "visit_variable_delete_use", "name", name)
}
func (t *TracingVisitor) VisitEnterBlockScope() { t.log("visit_enter_block_scope") }
func (t *TracingVisitor) VisitExitBlockScope()  { t.log("visit_exit_block_scope") }
func (t *TracingVisitor) VisitEnterFunctionScope(isAsync bool, isGenerator bool) {
	t.logger.Debugw("parser_visit", "event", "visit_enter_function_scope", "async", isAsync, "generator", isGenerator)
}
func (t *TracingVisitor) VisitEnterFunctionScopeBody() { t.log("visit_enter_function_scope_body") }
func (t *TracingVisitor) VisitExitFunctionScope()      { t.log("visit_exit_function_scope") }
func (t *TracingVisitor) VisitEnterInterfaceScope()    { t.log("visit_enter_interface_scope") }
func (t *TracingVisitor) VisitExitInterfaceScope()     { t.log("visit_exit_interface_scope") }
func (t *TracingVisitor) VisitEnterClassScope()        { t.log("visit_enter_class_scope") }
func (t *TracingVisitor) VisitEnterClassScopeBody(name string, hasName bool) {
	t.logger.Debugw("parser_visit", "event", "visit_enter_class_scope_body", "name", name, "has_name", hasName)
}
func (t *TracingVisitor) VisitExitClassScope()          { t.log("visit_exit_class_scope") }
func (t *TracingVisitor) VisitEnterNamespaceScope()     { t.log("visit_enter_namespace_scope") }
func (t *TracingVisitor) VisitExitNamespaceScope()      { t.log("visit_exit_namespace_scope") }
func (t *TracingVisitor) VisitEnterIndexSignatureScope() {
	t.log("visit_enter_index_signature_scope")
}
func (t *TracingVisitor) VisitExitIndexSignatureScope() { t.log("visit_exit_index_signature_scope") }
func (t *TracingVisitor) VisitEnterTypeScope()          { t.log("visit_enter_type_scope") }
func (t *TracingVisitor) VisitExitTypeScope()           { t.log("visit_exit_type_scope") }
func (t *TracingVisitor) VisitPropertyDeclaration(name string, hasName bool) {
	t.logger.Debugw("parser_visit", "event", "visit_property_declaration", "name", name, "has_name", hasName)
}
func (t *TracingVisitor) VisitEndOfModule() { t.log("visit_end_of_module") }

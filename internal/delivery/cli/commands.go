package cli

// Command operation names
const (
	OpSubmit      = "submit"
	OpList        = "list"
	OpEnqueueAll  = "enqueue_all"
	OpEnqueue     = "enqueue"
	OpProcessNext = "process_next"
	OpDecide      = "decide"
	OpFilter      = "filter"
	OpSearch      = "search"
	OpStage       = "stage"
	OpTrack       = "track"
	OpReport      = "report"
	OpExport      = "export"
	OpHistory     = "history"
	OpVerifyAudit = "verify_audit"
	OpExit        = "exit"
)

// SubmitCommand records a new application. Fields are not validated.
type SubmitCommand struct {
	Name       string
	JobID      string
	ResumeLink string
}

// ListCommand enumerates every application in submission order.
type ListCommand struct{}

// EnqueueAllCommand queues every stored application for review.
type EnqueueAllCommand struct{}

// EnqueueCommand queues the first application named Name.
type EnqueueCommand struct {
	Name string
}

// ProcessNextCommand takes the head of the review queue.
type ProcessNextCommand struct{}

// DecideCommand shortlists or rejects the first application named Name.
type DecideCommand struct {
	Name   string
	Action string `validate:"decision_action"`
}

// FilterCommand returns applications matching every criteria field.
type FilterCommand struct {
	Criteria map[string]string
}

// SearchCommand returns applications whose Key field equals Value.
type SearchCommand struct {
	Key   string
	Value string
}

// StageCommand moves the first application named Name to Label.
// Any label is accepted, blank included.
type StageCommand struct {
	Name  string
	Label string
}

// TrackCommand records every application at its current status and displays the tracker.
type TrackCommand struct{}

// ReportCommand summarizes all applications.
type ReportCommand struct{}

// ExportCommand renders the report in Format (xlsx when empty).
type ExportCommand struct {
	Format string `validate:"omitempty,oneof=xlsx csv yaml"`
}

// HistoryCommand lists the decision log.
type HistoryCommand struct{}

// VerifyAuditCommand checks the audit hash chain.
type VerifyAuditCommand struct{}

// ExitCommand ends the session.
type ExitCommand struct{}

func (SubmitCommand) Op() string      { return OpSubmit }
func (ListCommand) Op() string        { return OpList }
func (EnqueueAllCommand) Op() string  { return OpEnqueueAll }
func (EnqueueCommand) Op() string     { return OpEnqueue }
func (ProcessNextCommand) Op() string { return OpProcessNext }
func (DecideCommand) Op() string      { return OpDecide }
func (FilterCommand) Op() string      { return OpFilter }
func (SearchCommand) Op() string      { return OpSearch }
func (StageCommand) Op() string       { return OpStage }
func (TrackCommand) Op() string       { return OpTrack }
func (ReportCommand) Op() string      { return OpReport }
func (ExportCommand) Op() string      { return OpExport }
func (HistoryCommand) Op() string     { return OpHistory }
func (VerifyAuditCommand) Op() string { return OpVerifyAudit }
func (ExitCommand) Op() string        { return OpExit }

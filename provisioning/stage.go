package provisioning

//go:generate go run github.com/raito-io/enumer -type=Stage -trimprefix=Stage
type Stage int

// The provisioning run walks these stages in order. Failed runs keep the
// stage they failed at; a run that reached StageComplete ran to the end,
// which is not the same as everything having succeeded.
const (
	StageValidated Stage = iota
	StageDirectoryCreating
	StageDirectoryCreated
	StageBusinessCreating
	StageBusinessCreated
	StageLicensesAssigning
	StageRolesAssigning
	StageComplete
)

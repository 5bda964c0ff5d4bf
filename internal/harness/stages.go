package harness

// Stage names one step of a run.
type Stage string

const (
	StageLogin Stage = "login"

	StageAuthMissingToken Stage = "auth-missing-token"
	StageAuthInvalidToken Stage = "auth-invalid-token"

	StageCreated         Stage = "created"
	StageVerified        Stage = "verified"
	StageListed          Stage = "listed"
	StageUpdated         Stage = "updated"
	StageVerifiedUpdated Stage = "verified-updated"
	StageDeleted         Stage = "deleted"
	StageVerifiedAbsent  Stage = "verified-absent"
	StageDeleteRepeated  Stage = "delete-repeated"
	StageCleanup         Stage = "cleanup"
)

// InvalidToken is a syntactically valid bearer token the catalog must reject
// with 403.
const InvalidToken = "invalidToken"

// Messages the catalog returns on success and for a missing employee.
const (
	CreatedMessage  = "Employee created successfully!"
	DeletedMessage  = "Employee deleted successfully!"
	NotFoundMessage = "Employee not found"
)

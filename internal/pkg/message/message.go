package message

const (
	Greeting      = "Hello World!"
	ModelsCreated = "Models created!"

	RiskTypeAdded   = "Risk type added"
	RiskTypeUpdated = "Risk type updated"
	RiskTypeRemoved = "Risk type removed"

	FieldAdded   = "Field added!"
	FieldUpdated = "Field updated!"
	FieldRemoved = "Field removed!"

	InvalidInput     = "Invalid input."
	InvalidID        = "Invalid id."
	NotFound         = "Record not found."
	UnsupportedMedia = "Content-Type must be application/json."
	PayloadTooLarge  = "Payload too large."
	ConstraintFailed = "The referenced risk type does not exist."
	Unavailable      = "Database is unavailable."
	RequestTimeout   = "Request cancelled or timeout."
	ServerError      = "An unexpected error occurred."

	EnvErrFmt = "environment variable is not set: %s"
)

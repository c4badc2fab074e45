package errors

// Client-facing error messages. Grouped by the taxonomy they map to:
// 400 validation, 401 unauthorized, 404 not found, 500 internal.

// Auth and account
const (
	MsgMissingSignupFields  = "All required fields must be provided"
	MsgDuplicateIdentity    = "User with this email or username already exists"
	MsgMissingCredentials   = "Username and password are required"
	MsgInvalidCredentials   = "Invalid credentials"
	MsgMissingAuthHeader    = "Authorization header is required"
	MsgInvalidAuthFormat    = "Authorization header format must be Bearer {token}"
	MsgTokenInvalidated     = "Token has been invalidated"
	MsgUserNotFound         = "User not found"
	MsgMissingPasswords     = "Current password and new password are required"
	MsgWrongCurrentPassword = "Current password is incorrect"
)

// Resources
const (
	MsgInvalidID         = "Invalid id"
	MsgFolderNameNeeded  = "Name is required"
	MsgFolderNotFound    = "Planner not found"
	MsgEventFieldsNeeded = "Date and title are required"
	MsgEventNotFound     = "Event not found"
	MsgInvalidEventData  = "Invalid data format."
	MsgFileNotFound      = "File not found"
	MsgNoFilesUploaded   = "No files uploaded"
	MsgNoAvatarUploaded  = "No file uploaded"
)

// Server failures
const (
	MsgFolderDeleteFailed = "Server failed to delete the planner and its contents."
)

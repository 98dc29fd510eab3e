package handler

// userRequest is the wire representation accepted on create and edit.
// Password is write-only: accepted here, never present in userResponse.
// The submitted role is carried through but always overwritten by the
// workflow.
type userRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// userResponse is the wire representation emitted on every success. The ID is
// internal to the persistence layer and never serialized.
type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

package services

import "errors"

// User-visible literals. These are shown to people verbatim, so the exact
// wording (including capitalization and punctuation) is part of the
// contract with the existing client.
const (
	MsgFillAllFields      = "Please fill in all fields"
	MsgLoginFailed        = "Login Failed: Invalid credentials or server error"
	MsgContentRequired    = "Error. Please enter some content for your post"
	MsgLocationRequired   = "Error. Please specify a location"
	MsgPhotoPermission    = "Permission needed. Please grant permission to access photos"
	MsgPostShared         = "Post shared successfully!"
	MsgPostFailed         = "Failed to create post."
	MsgPasswordsMismatch  = "Passwords do not match"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgAccountCreated     = "Account created successfully!"
	MsgRegistrationFailed = "Registration Failed. Please try again."
)

// Sentinel errors whose text is the exact user-visible message.
var (
	ErrFillAllFields      = errors.New(MsgFillAllFields)
	ErrLoginFailed        = errors.New(MsgLoginFailed)
	ErrContentRequired    = errors.New(MsgContentRequired)
	ErrLocationRequired   = errors.New(MsgLocationRequired)
	ErrPhotoPermission    = errors.New(MsgPhotoPermission)
	ErrPostFailed         = errors.New(MsgPostFailed)
	ErrPasswordsMismatch  = errors.New(MsgPasswordsMismatch)
	ErrPasswordTooShort   = errors.New(MsgPasswordTooShort)
	ErrRegistrationFailed = errors.New(MsgRegistrationFailed)
)

package model

import "errors"

// Messages returned to API clients. They are part of the public contract.
const (
	MsgInvalidCredentials = "帳號與密碼不存在"
	MsgEmptyFields        = "欄位不可空白"
	MsgPasswordMismatch   = "確認密碼錯誤"
	MsgNameTooLong        = "名稱字數最多 50 字"
	MsgIntroTooLong       = "自介字數最多 160 字"
	MsgAccountTooLong     = "帳號字數最多 255 字"
	MsgEmailTooLong       = "email 字數最多 255 字"
	MsgPasswordTooLong    = "密碼長度最多 72 位元組"
	MsgBodyTooLarge       = "請求內容過大"
	MsgAccountTaken       = "account 已重複註冊!"
	MsgEmailTaken         = "email 已重複註冊!"
	MsgForbiddenEdit      = "權限錯誤"
	MsgEmptyContent       = "內容不可空白"
	MsgTweetTooLong       = "字數不可超過 140 字"
	MsgAlreadyLiked       = "已經按過喜歡"
	MsgNotLiked           = "尚未按過喜歡"
	MsgInvalidImage       = "圖片格式錯誤"
	MsgFileTooLarge       = "檔案過大"
	MsgSignUpSuccess      = "註冊成功"
	MsgSettingsSuccess    = "資料編輯成功"
	MsgUnauthorized       = "unauthorized"
	MsgPermissionDenied   = "permission denied"
	MsgUserNotFound       = "User didn't exist!"
	MsgTweetNotFound      = "Tweet didn't exist!"
	MsgInternal           = "internal server error"
)

// Field limits.
const (
	MaxNameLength         = 50
	MaxIntroductionLength = 160
	MaxTweetLength        = 140
	MaxAccountLength      = 255
	MaxEmailLength        = 255
)

var (
	// ErrNotFound is returned by stores when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New(MsgUserNotFound)
	// ErrTweetNotFound is returned when a referenced tweet does not exist.
	ErrTweetNotFound = errors.New(MsgTweetNotFound)

	// ErrAccountTaken is returned by stores on a duplicate account.
	ErrAccountTaken = errors.New("account is already taken")
	// ErrEmailTaken is returned by stores on a duplicate email.
	ErrEmailTaken = errors.New("email is already taken")
	// ErrAlreadyLiked is returned by stores on a duplicate like.
	ErrAlreadyLiked = errors.New("tweet is already liked")

	// ErrInvalidCredentials covers unknown account, wrong password and wrong
	// role on sign-in alike.
	ErrInvalidCredentials = errors.New(MsgInvalidCredentials)
	// ErrMissingToken is returned when a protected request carries no bearer token.
	ErrMissingToken = errors.New("missing authorization token")
	// ErrInvalidToken is returned when a token fails verification.
	ErrInvalidToken = errors.New("invalid authorization token")
	// ErrPermissionDenied is returned by the role gate.
	ErrPermissionDenied = errors.New(MsgPermissionDenied)
)

// ValidationError is a client input problem reported inside a regular
// response envelope.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given client message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

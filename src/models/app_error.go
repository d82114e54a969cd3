package models

// ชนิดของ error ที่ engine ส่งกลับ ให้ controller map เป็น HTTP status เอง
const (
	ErrKindValidation    = "validation"
	ErrKindStateConflict = "state_conflict"
	ErrKindNotFound      = "not_found"
)

// AppError error แบบระบุชนิด ใช้กับ flow ที่ mutate ข้อมูลเท่านั้น
// ฟังก์ชัน pure (calendar/resolver/summary) ไม่คืน error
type AppError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *AppError {
	return &AppError{Kind: ErrKindValidation, Message: msg}
}

func NewStateConflictError(msg string) *AppError {
	return &AppError{Kind: ErrKindStateConflict, Message: msg}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Kind: ErrKindNotFound, Message: msg}
}

// error ประจำ state machine เช็คอิน-เช็คเอาท์
var (
	ErrAlreadyCheckedIn  = NewStateConflictError("คุณได้เช็คอินแล้วในวันนี้")
	ErrAlreadyCheckedOut = NewStateConflictError("คุณได้เช็คเอาท์แล้วในวันนี้")
	ErrNotCheckedInYet   = NewNotFoundError("ยังไม่ได้เช็คอินในวันนี้")
)

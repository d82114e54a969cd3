package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error กลับจาก API
type ErrorResponse struct {
	Status  int    `json:"status"`         // HTTP Status Code
	Kind    string `json:"kind,omitempty"` // validation | state_conflict | not_found
	Message string `json:"message"`        // รายละเอียดของ Error
}

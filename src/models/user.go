package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User บัญชีผู้ใช้สำหรับ login แยกจาก profile ตาม role
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // รับจาก frontend ได้ แต่ไม่ส่งกลับ
	Role     string             `bson:"role" json:"role"`            // "Faculty" | "Admin" | "Student" | "Parent"
	RefID    primitive.ObjectID `bson:"refId" json:"refId"`
	Name     string             `bson:"-" json:"name"`
}

package services

import (
	"context"
	"errors"
	"strings"

	"Backend-CampusPortal/src/database"
	"Backend-CampusPortal/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID ดึงบัญชีผู้ใช้จาก id ใช้ตอน refresh token
func GetUserByID(userID string) (*models.User, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.NewValidationError("รหัสผู้ใช้ไม่ถูกต้อง")
	}

	var dbUser models.User
	if err := database.UserCollection.FindOne(context.Background(), bson.M{"_id": uID}).Decode(&dbUser); err != nil {
		return nil, models.NewNotFoundError("ไม่พบผู้ใช้")
	}
	return &dbUser, nil
}

// AuthenticateUser ตรวจ email/password แล้วเติมชื่อจาก profile ตาม role
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("Invalid email or password")
	}

	// ตรวจสอบ password
	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("Invalid password")
	}

	result := &models.User{
		ID:    dbUser.ID,
		Email: dbUser.Email,
		Role:  dbUser.Role,
		RefID: dbUser.RefID,
	}

	// 🔍 ดึง name จาก profile ตาม role
	switch dbUser.Role {
	case "Faculty":
		var faculty models.Faculty
		if err := database.FacultyCollection.FindOne(ctx, bson.M{"_id": dbUser.RefID}).Decode(&faculty); err == nil {
			result.Name = faculty.Name
		}
	case "Student":
		var student models.Student
		if err := database.StudentCollection.FindOne(ctx, bson.M{"_id": dbUser.RefID}).Decode(&student); err == nil {
			result.Name = student.Name
		}
	}

	return result, nil
}

package services

import (
	"log"

	DB "Backend-CampusPortal/src/database"
	"Backend-CampusPortal/src/services/attendance"
	"Backend-CampusPortal/src/services/leaves"
)

func init() {
	if err := DB.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	DB.FacultyCollection = DB.GetCollection("CampusPortalDB", "faculties")
	DB.CheckInCollection = DB.GetCollection("CampusPortalDB", "checkins")
	DB.LeaveCollection = DB.GetCollection("CampusPortalDB", "leaves")
	DB.TeachingSessionCollection = DB.GetCollection("CampusPortalDB", "teachingSessions")
	DB.WorkLogCollection = DB.GetCollection("CampusPortalDB", "workLogs")
	DB.HolidayCollection = DB.GetCollection("CampusPortalDB", "holidays")
	DB.StudentCollection = DB.GetCollection("CampusPortalDB", "students")
	DB.StudentAttendanceColl = DB.GetCollection("CampusPortalDB", "studentAttendance")
	DB.BatchCollection = DB.GetCollection("CampusPortalDB", "batches")
	DB.UserCollection = DB.GetCollection("CampusPortalDB", "users")
	if DB.CheckInCollection == nil || DB.LeaveCollection == nil {
		log.Fatal("Failed to get the required collections")
	}

	// resolver อ่านใบลาผ่าน interface สลับ implementation ได้ที่จุดเดียว
	attendance.SetLeaveSource(leaves.Store{})

	DB.InitRedis()
	if DB.RedisURI != "" {
		DB.InitAsynq()
	}
}

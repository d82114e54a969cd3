package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-CampusPortal/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// summary ต่อ (faculty, month) เป็น read-then-compute ล้วน cache ได้ปลอดภัย
const summaryTTL = 15 * time.Minute

func summaryKey(facultyID, month string) string {
	return fmt.Sprintf("monthly_summary:%s:%s", facultyID, month)
}

// CacheMonthlySummary เก็บสรุปรายเดือนที่คำนวณแล้วลง Redis
// ถ้าไม่มี Redis (dev mode) จะข้ามเงียบ ๆ
func CacheMonthlySummary(facultyID, month string, data []byte) error {
	if DB.RedisClient == nil {
		return nil
	}
	return DB.RedisClient.Set(Ctx, summaryKey(facultyID, month), data, summaryTTL).Err()
}

// GetCachedMonthlySummary อ่านสรุปรายเดือนจาก cache คืน nil เมื่อไม่มี
func GetCachedMonthlySummary(facultyID, month string) ([]byte, error) {
	if DB.RedisClient == nil {
		return nil, nil
	}
	data, err := DB.RedisClient.Get(Ctx, summaryKey(facultyID, month)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached summary: %v", err)
	}
	return data, nil
}

// InvalidateMonthlySummary ลบ cache หลังมีการเช็คอิน/เช็คเอาท์หรือ log ชั่วโมงใหม่
func InvalidateMonthlySummary(facultyID, month string) error {
	if DB.RedisClient == nil {
		return nil
	}
	return DB.RedisClient.Del(Ctx, summaryKey(facultyID, month)).Err()
}

// StoreRefreshToken เก็บ refresh token ใน Redis พร้อม expiration
// Returns nil if Redis is not available (development mode)
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	if DB.RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("refresh_token:%s", userID)
	if err := DB.RedisClient.Set(Ctx, key, refreshToken, expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken ตรวจสอบว่า refresh token ตรงกับที่เก็บไว้ใน Redis หรือไม่
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	if DB.RedisClient == nil {
		// ไม่มี Redis ใน dev mode - ข้ามการตรวจสอบ
		return true, nil
	}
	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := DB.RedisClient.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}
	return storedToken == refreshToken, nil
}

// DeleteRefreshToken ลบ refresh token จาก Redis (ใช้ตอน logout)
func DeleteRefreshToken(userID string) error {
	if DB.RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("refresh_token:%s", userID)
	return DB.RedisClient.Del(Ctx, key).Err()
}

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
func BlacklistToken(token string, expiresIn time.Duration) error {
	if DB.RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("blacklist:%s", token)
	return DB.RedisClient.Set(Ctx, key, "1", expiresIn).Err()
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
func IsTokenBlacklisted(token string) (bool, error) {
	if DB.RedisClient == nil {
		return false, nil
	}
	key := fmt.Sprintf("blacklist:%s", token)
	_, err := DB.RedisClient.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}

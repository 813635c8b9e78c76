package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TokenMaxAgeMs token有效期限 超過一小時拒絕
const TokenMaxAgeMs = 3600000

// tokenHashLength 雜湊只取前16個hex字元 輕量防呆 不是安全邊界
const tokenHashLength = 16

// GenerateToken 產生 "{timestamp}_{hash}" 格式的token
func GenerateToken(timestampMs int64, secret string) string {
	return fmt.Sprintf("%d_%s", timestampMs, tokenHash(timestampMs, secret))
}

func tokenHash(timestampMs int64, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("start_%d", timestampMs)))
	return hex.EncodeToString(mac.Sum(nil))[:tokenHashLength]
}

// VerifyToken 驗證token格式 雜湊與有效期限
func VerifyToken(token, secret string, nowMs int64) error {
	parts := strings.SplitN(token, "_", 2)
	if len(parts) != 2 {
		return errors.New("invalid token")
	}

	timestampMs, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return errors.New("invalid token")
	}

	expected := tokenHash(timestampMs, secret)
	if !hmac.Equal([]byte(parts[1]), []byte(expected)) {
		return errors.New("invalid token")
	}

	if nowMs-timestampMs > TokenMaxAgeMs {
		return errors.New("token expired")
	}
	return nil
}

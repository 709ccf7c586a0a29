package security

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestCreateIdentityToken(t *testing.T) {
	secret := []byte("test-signing-secret")
	base64Secret := base64.StdEncoding.EncodeToString(secret)

	tokenStr, err := CreateIdentityToken(&UserIdentity{
		Id:       5,
		UserName: "jane",
		Email:    "jane@example.com",
		Provider: "local",
	}, base64Secret, 3600)
	assert.NoError(t, err)

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "jane", claims["unique_name"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "workingtime", claims["iss"])
}

func TestCreateIdentityTokenRejectsBadSecret(t *testing.T) {
	_, err := CreateIdentityToken(&UserIdentity{UserName: "jane"}, "not-base64!!", 3600)
	assert.Error(t, err)
}

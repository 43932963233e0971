package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/omsayari/sayari-api/internal/application/auth"
)

func TestStaticSecretVerifier_SecretoPlano(t *testing.T) {
	v := auth.NewStaticSecretVerifier("admin123", "")

	assert.True(t, v.Verify("admin123"))
	assert.False(t, v.Verify("otra-clave"))
	assert.False(t, v.Verify(""), "credencial vacía nunca autoriza")
}

func TestStaticSecretVerifier_HashBcryptTienePrioridad(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-fuerte"), bcrypt.MinCost)
	require.NoError(t, err)

	v := auth.NewStaticSecretVerifier("admin123", string(hash))

	assert.True(t, v.Verify("clave-fuerte"))
	assert.False(t, v.Verify("admin123"), "con hash configurado el secreto plano deja de valer")
}

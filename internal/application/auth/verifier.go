// Package auth modela la verificación de credenciales de escritura como una
// capacidad sustituible: los handlers dependen de Verifier, no del esquema
// concreto (secreto plano hoy, algo más fuerte mañana sin tocar endpoints).
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Verifier decide si una credencial presentada autoriza mutaciones.
type Verifier interface {
	Verify(credential string) bool
}

// StaticSecretVerifier compara contra el secreto compartido de administración.
// Si hay un hash bcrypt configurado se usa ese; si no, comparación en tiempo
// constante contra el secreto plano.
type StaticSecretVerifier struct {
	secret     string
	bcryptHash string
}

// NewStaticSecretVerifier construye el verificador. bcryptHash puede ser vacío.
func NewStaticSecretVerifier(secret, bcryptHash string) *StaticSecretVerifier {
	return &StaticSecretVerifier{secret: secret, bcryptHash: bcryptHash}
}

// Verify devuelve true si la credencial coincide con el secreto configurado.
// Una credencial vacía nunca autoriza.
func (v *StaticSecretVerifier) Verify(credential string) bool {
	if credential == "" {
		return false
	}
	if v.bcryptHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(v.bcryptHash), []byte(credential)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(v.secret), []byte(credential)) == 1
}

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// Un valor no numérico en una clave entera cae al default en vez de
// convertirse en cero: JWT_EXPIRATION_HOURS=abc emitiría tokens ya expirados.
func TestGetInt_ValorNoNumericoCaeAlDefault(t *testing.T) {
	v := viper.New()
	v.Set("JWT_EXPIRATION_HOURS", "abc")

	assert.Equal(t, 8, getInt(v, "JWT_EXPIRATION_HOURS", 8))
}

func TestGetInt_ValoresValidos(t *testing.T) {
	v := viper.New()

	assert.Equal(t, 8, getInt(v, "NO_DEFINIDA", 8), "clave ausente usa el default")

	v.Set("COMO_STRING", "12")
	assert.Equal(t, 12, getInt(v, "COMO_STRING", 8))

	v.Set("COMO_INT", 24)
	assert.Equal(t, 24, getInt(v, "COMO_INT", 8))
}

func TestDSN_EscapaCredenciales(t *testing.T) {
	db := DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss:word",
		DBName: "pos_gadget", SSLMode: "disable",
	}

	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss:word")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := DBConfig{
		DatabaseURL: "postgresql://u:p@host:5432/db?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgresql://u:p@host:5432/db?sslmode=require", db.ConnectionString())
}

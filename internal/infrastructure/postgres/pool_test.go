package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/eno-livraison-api/pkg/config"
)

func TestLookupIPv4_Literales(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), "10.0.0.7")
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = lookupIPv4(context.Background(), "2001:db8::1")
	assert.ErrorIs(t, err, errNoIPv4)
}

func TestIPv4ConnString(t *testing.T) {
	ctx := context.Background()

	got := ipv4ConnString(ctx, config.DBConfig{DatabaseURL: "postgres://eno:pw@127.0.0.1/eno?sslmode=require"})
	assert.Equal(t, "postgres://eno:pw@127.0.0.1:5432/eno?sslmode=require", got, "puerto por defecto")

	got = ipv4ConnString(ctx, config.DBConfig{DatabaseURL: "postgres://eno:pw@[2001:db8::1]:6543/eno"})
	assert.Equal(t, "postgres://eno:pw@[2001:db8::1]:6543/eno", got, "sin IPv4 se deja la URL intacta")

	got = ipv4ConnString(ctx, config.DBConfig{Host: "127.0.0.1", Port: 5433, User: "u", Password: "p", DBName: "eno", SSLMode: "disable"})
	assert.Equal(t, "postgres://u:p@127.0.0.1:5433/eno?sslmode=disable", got)
}

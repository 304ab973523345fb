package database

import (
	"testing"

	"github.com/sharath018/temple-donation-docs/config"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{DBHost: "db", DBPort: "5432", DBUser: "temple", DBPassword: "secret", DBName: "donations"}
	want := "host=db user=temple password=secret dbname=donations port=5432 sslmode=disable TimeZone=Asia/Kolkata"
	if got := DSN(cfg); got != want {
		t.Errorf("DSN() = %q\nwant %q", got, want)
	}
}

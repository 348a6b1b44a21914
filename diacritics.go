package diacritics

import (
	"embed"
	"io/fs"
	"strings"
	"log"

	"github.com/jaevor/go-nanoid"
)

var (
	ServerName        = "diacritics-server"
	Version    string = "dev"
)

//go:embed all:repos/migrations
var migrationsFS embed.FS
var MigrationsFS fs.FS

var GenID func() string
var IDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-~"

const IDPrefixMappingSet = "ms"

func init() {
	var err error
	MigrationsFS, err = fs.Sub(migrationsFS, "repos/migrations")
	if err != nil {
		log.Fatal(err)
	}
	GenID, err = nanoid.CustomUnicode(IDAlphabet, 12)
	if err != nil {
		panic(err)
	}
}

func GenIDMappingSet() string {
	return IDPrefixMappingSet + "_" + GenID()
}

func IsMappingSetID(id string) bool {
	prefix, suffix, ok := strings.Cut(id, "_")
	return ok && prefix == IDPrefixMappingSet && len([]rune(suffix)) == 12
}

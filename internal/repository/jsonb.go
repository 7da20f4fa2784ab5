package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-jet/jet/v2/qrm"
)

// decodeJsonb unmarshals a nullable jsonb column. SQL null, json null
// and an empty object all decode to nil since the pipeline writes {}
// when a collaborator produced nothing
func decodeJsonb[T any](raw *string) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" || trimmed == "null" || trimmed == "{}" {
		return nil, nil
	}

	out := new(T)
	if err := json.Unmarshal([]byte(trimmed), out); err != nil {
		return nil, fmt.Errorf("failed to decode jsonb column: %w", err)
	}
	return out, nil
}

func encodeJsonb[T any](in *T) (*string, error) {
	if in == nil {
		return nil, nil
	}
	bytes, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsonb column: %w", err)
	}
	s := string(bytes)
	return &s, nil
}

// dbConn is satisfied by both *sql.DB and *sql.Tx
type dbConn interface {
	qrm.Queryable
	qrm.Executable
}

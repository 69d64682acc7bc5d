package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// HeaderLastModifiedVersion is the response header carrying a library
// version after a read or a write.
const HeaderLastModifiedVersion = "Last-Modified-Version"

// WriteJSON marshals data and writes it with statusCode. On a marshal
// failure the client gets a 500 and the error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteVersionedJSON is WriteJSON plus the Last-Modified-Version header.
func WriteVersionedJSON(w http.ResponseWriter, data any, version int64, statusCode int) (int, error) {
	w.Header().Set(HeaderLastModifiedVersion, strconv.FormatInt(version, 10))
	return WriteJSON(w, data, statusCode)
}

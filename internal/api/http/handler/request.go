package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

const (
	// maxMemory is the part of a multipart body kept in memory; the rest spills to disk.
	maxMemory = 1 << 20
	// maxBodyBytes caps request bodies that carry no file.
	maxBodyBytes = 1 << 20
)

// decodeBody fills dst from a JSON body or, for form posts, from the named
// form fields. Bodies over maxBodyBytes are refused and other unreadable
// input is reported as missing fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, fields map[string]*string) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		var err error
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(maxMemory)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return bodyError(err)
		}
		for name, p := range fields {
			*p = r.FormValue(name)
		}
		return nil
	default:
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return bodyError(err)
		}
		return nil
	}
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return model.NewValidationError(model.MsgBodyTooLarge)
	}
	return model.NewValidationError(model.MsgEmptyFields)
}

// pathID parses the {name} path variable. Malformed ids resolve to notFound.
func pathID(r *http.Request, name string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}

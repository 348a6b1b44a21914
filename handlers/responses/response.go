package responses

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"

	"github.com/juho05/diacritics"
	"github.com/juho05/log"
)

const apiVersion = "1"

type status string

const (
	statusOK     = "ok"
	statusFailed = "failed"
)

type Response struct {
	XMLName       xml.Name `xml:"diacritics-response" json:"-"`
	Status        status   `xml:"status,attr" json:"status"`
	Version       string   `xml:"version,attr" json:"version"`
	Type          string   `xml:"type,attr" json:"type"`
	ServerVersion string   `xml:"serverVersion,attr" json:"serverVersion"`

	Error         *Error         `xml:"error,omitempty" json:"error,omitempty"`
	Text          *string        `xml:"text,omitempty" json:"text,omitempty"`
	Texts         *Texts         `xml:"texts>text,omitempty" json:"texts,omitempty"`
	HasDiacritics *bool          `xml:"hasDiacritics,omitempty" json:"hasDiacritics,omitempty"`
	SearchKey     *string        `xml:"searchKey,omitempty" json:"searchKey,omitempty"`
	Mappings      *Mappings      `xml:"mappings>mapping,omitempty" json:"mappings,omitempty"`
	Languages     *Languages     `xml:"languages>language,omitempty" json:"languages,omitempty"`
	MappingSets   *MappingSets   `xml:"mappingSets>mappingSet,omitempty" json:"mappingSets,omitempty"`
	Reload        *ReloadSummary `xml:"reload,omitempty" json:"reload,omitempty"`
}

func New() Response {
	return Response{
		Status:        statusOK,
		Version:       apiVersion,
		Type:          diacritics.ServerName,
		ServerVersion: diacritics.Version,
	}
}

func EncodeError(w io.Writer, format, msg string, code ErrorCode) error {
	r := Response{
		Status:        statusFailed,
		Version:       apiVersion,
		Type:          diacritics.ServerName,
		ServerVersion: diacritics.Version,
		Error: &Error{
			Code:    code,
			Message: msg,
		},
	}
	return r.Encode(w, format)
}

func (r Response) EncodeOrLog(w io.Writer, format string) {
	err := r.Encode(w, format)
	if err != nil {
		log.Error(err)
	}
}

// Encode writes r as XML if format is "xml" and as JSON otherwise.
func (r Response) Encode(w io.Writer, format string) error {
	rw, isRW := w.(http.ResponseWriter)
	if format != "xml" {
		type response struct {
			DiacriticsResponse *Response `json:"diacritics-response"`
		}
		if isRW {
			rw.Header().Set("Content-Type", "application/json; charset=utf-8")
		}
		return json.NewEncoder(w).Encode(response{
			DiacriticsResponse: &r,
		})
	}
	if isRW {
		rw.Header().Set("Content-Type", "application/xml; charset=utf-8")
	}
	encoder := xml.NewEncoder(w)
	err := encoder.Encode(r)
	if err != nil {
		return err
	}
	return encoder.Close()
}

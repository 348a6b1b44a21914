package responses

type ErrorCode int

const (
	ErrorGeneric                  ErrorCode = 0
	ErrorRequiredParameterMissing ErrorCode = 10
	ErrorInputTooLarge            ErrorCode = 20
	ErrorInvalidBody              ErrorCode = 30
	ErrorNotFound                 ErrorCode = 70
)

type Error struct {
	Code    ErrorCode `xml:"code,attr" json:"code"`
	Message string    `xml:"message,attr" json:"message"`
}

package client

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Fallbacks used when a failed envelope omits its error fields.
const (
	UnknownErrorCode    = "UNKNOWN_ERROR"
	UnknownErrorMessage = "알 수 없는 오류가 발생했습니다."
)

var errNotAnObject = errors.New("response body is not a JSON object")

// ErrorInfo is the error member of the response envelope.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the uniform wrapper of every API response body.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorInfo      `json:"error"`
}

// DecodeEnvelope turns a response body into its raw data member or a typed
// error. A nil result with a nil error means "no data": either an empty body
// on a 2xx status, or a successful envelope whose data is null.
func DecodeEnvelope(status int, body []byte) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)

	if len(body) == 0 {
		if isSuccess(status) {
			return nil, nil
		}
		return nil, &Error{Kind: KindEmptyResponse, Status: status}
	}

	if body[0] != '{' {
		return nil, parseError(status, errNotAnObject)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, parseError(status, err)
	}

	if !env.Success || env.Error != nil {
		e := &Error{Kind: KindAPI, Status: status, Code: UnknownErrorCode, Message: UnknownErrorMessage}
		if env.Error != nil {
			if env.Error.Code != "" {
				e.Code = env.Error.Code
			}
			if env.Error.Message != "" {
				e.Message = env.Error.Message
			}
		}
		return nil, e
	}

	if isNull(env.Data) {
		return nil, nil
	}
	return env.Data, nil
}

// Unmarshal decodes raw data into out. Missing data leaves out untouched, so
// void endpoints can pass a nil out.
func Unmarshal(raw json.RawMessage, out any) error {
	if out == nil || isNull(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return parseError(0, err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

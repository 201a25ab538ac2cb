package xmlrpc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	FaultParse          = -32700
	FaultMethodNotFound = -32601
	FaultInvalidParams  = -32602
	FaultInternal       = -32603
)

var ErrMalformedMessage = errors.New("malformed xml-rpc message")

type Fault struct {
	Code    int
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("xml-rpc fault %d: %s", f.Code, f.Message)
}

type paramXML struct {
	Value valueXML `xml:"value"`
}

type methodCallXML struct {
	XMLName    xml.Name   `xml:"methodCall"`
	MethodName string     `xml:"methodName"`
	Params     []paramXML `xml:"params>param"`
}

type methodResponseXML struct {
	XMLName xml.Name   `xml:"methodResponse"`
	Params  []paramXML `xml:"params>param"`
	Fault   *struct {
		Value valueXML `xml:"value"`
	} `xml:"fault"`
}

func EncodeCall(method string, params ...any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString("<methodCall><methodName>")
	if err := xml.EscapeText(&buf, []byte(method)); err != nil {
		return nil, fmt.Errorf("escape method name: %w", err)
	}
	buf.WriteString("</methodName><params>")
	for i, param := range params {
		buf.WriteString("<param>")
		if err := writeValue(&buf, param); err != nil {
			return nil, fmt.Errorf("encode param %d: %w", i, err)
		}
		buf.WriteString("</param>")
	}
	buf.WriteString("</params></methodCall>")

	return buf.Bytes(), nil
}

func DecodeCall(r io.Reader) (string, []any, error) {
	var call methodCallXML
	if err := xml.NewDecoder(r).Decode(&call); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	method := strings.TrimSpace(call.MethodName)
	if method == "" {
		return "", nil, fmt.Errorf("%w: missing method name", ErrMalformedMessage)
	}

	params := make([]any, 0, len(call.Params))
	for i, param := range call.Params {
		decoded, err := param.Value.decode()
		if err != nil {
			return "", nil, fmt.Errorf("%w: param %d: %v", ErrMalformedMessage, i, err)
		}
		params = append(params, decoded)
	}

	return method, params, nil
}

func EncodeResponse(result any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString("<methodResponse><params><param>")
	if err := writeValue(&buf, result); err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	buf.WriteString("</param></params></methodResponse>")

	return buf.Bytes(), nil
}

func EncodeFault(fault *Fault) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString("<methodResponse><fault>")
	err := writeValue(&buf, Struct{
		"faultCode":   fault.Code,
		"faultString": fault.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("encode fault: %w", err)
	}
	buf.WriteString("</fault></methodResponse>")

	return buf.Bytes(), nil
}

// DecodeResponse returns the single result value, or a *Fault error when the
// server answered with a fault.
func DecodeResponse(r io.Reader) (any, error) {
	var resp methodResponseXML
	if err := xml.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	if resp.Fault != nil {
		decoded, err := resp.Fault.Value.decode()
		if err != nil {
			return nil, fmt.Errorf("%w: fault: %v", ErrMalformedMessage, err)
		}
		members, _ := decoded.(Struct)
		code, _ := members.Int("faultCode")
		message, _ := members.String("faultString")
		return nil, &Fault{Code: int(code), Message: message}
	}

	if len(resp.Params) == 0 {
		return nil, fmt.Errorf("%w: response has no params", ErrMalformedMessage)
	}

	result, err := resp.Params[0].Value.decode()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	return result, nil
}

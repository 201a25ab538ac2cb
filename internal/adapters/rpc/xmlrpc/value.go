package xmlrpc

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

const dateTimeLayout = "20060102T15:04:05"

// Struct is the decoded form of an XML-RPC <struct>.
type Struct map[string]any

func (s Struct) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Struct) String(key string) (string, bool) {
	v, ok := s[key].(string)
	return v, ok
}

// Int accepts integer values and decimal strings.
func (s Struct) Int(key string) (int64, bool) {
	switch v := s[key].(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func (s Struct) Bool(key string) (bool, bool) {
	v, ok := s[key].(bool)
	return v, ok
}

func writeValue(buf *bytes.Buffer, v any) error {
	buf.WriteString("<value>")
	if err := writeTyped(buf, v); err != nil {
		return err
	}
	buf.WriteString("</value>")
	return nil
}

func writeTyped(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("<string></string>")
	case string:
		buf.WriteString("<string>")
		if err := xml.EscapeText(buf, []byte(x)); err != nil {
			return fmt.Errorf("escape string value: %w", err)
		}
		buf.WriteString("</string>")
	case bool:
		if x {
			buf.WriteString("<boolean>1</boolean>")
		} else {
			buf.WriteString("<boolean>0</boolean>")
		}
	case int:
		writeInt(buf, int64(x))
	case int32:
		writeInt(buf, int64(x))
	case int64:
		writeInt(buf, x)
	case uint32:
		writeInt(buf, int64(x))
	case uint64:
		if x > math.MaxInt64 {
			return writeTyped(buf, strconv.FormatUint(x, 10))
		}
		writeInt(buf, int64(x))
	case float64:
		buf.WriteString("<double>" + strconv.FormatFloat(x, 'f', -1, 64) + "</double>")
	case []byte:
		buf.WriteString("<base64>" + base64.StdEncoding.EncodeToString(x) + "</base64>")
	case time.Time:
		buf.WriteString("<dateTime.iso8601>" + x.UTC().Format(dateTimeLayout) + "</dateTime.iso8601>")
	case Struct:
		return writeStruct(buf, x)
	case map[string]any:
		return writeStruct(buf, x)
	case []any:
		return writeArray(buf, x)
	case []string:
		items := make([]any, 0, len(x))
		for _, item := range x {
			items = append(items, item)
		}
		return writeArray(buf, items)
	default:
		return fmt.Errorf("unsupported xml-rpc value type %T", v)
	}

	return nil
}

func writeInt(buf *bytes.Buffer, n int64) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		buf.WriteString("<i8>" + strconv.FormatInt(n, 10) + "</i8>")
		return
	}
	buf.WriteString("<int>" + strconv.FormatInt(n, 10) + "</int>")
}

func writeStruct(buf *bytes.Buffer, members map[string]any) error {
	keys := make([]string, 0, len(members))
	for key := range members {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buf.WriteString("<struct>")
	for _, key := range keys {
		buf.WriteString("<member><name>")
		if err := xml.EscapeText(buf, []byte(key)); err != nil {
			return fmt.Errorf("escape member name: %w", err)
		}
		buf.WriteString("</name>")
		if err := writeValue(buf, members[key]); err != nil {
			return fmt.Errorf("member %q: %w", key, err)
		}
		buf.WriteString("</member>")
	}
	buf.WriteString("</struct>")

	return nil
}

func writeArray(buf *bytes.Buffer, items []any) error {
	buf.WriteString("<array><data>")
	for i, item := range items {
		if err := writeValue(buf, item); err != nil {
			return fmt.Errorf("array item %d: %w", i, err)
		}
	}
	buf.WriteString("</data></array>")

	return nil
}

type valueXML struct {
	String   *string    `xml:"string"`
	Int      *string    `xml:"int"`
	I4       *string    `xml:"i4"`
	I8       *string    `xml:"i8"`
	Boolean  *string    `xml:"boolean"`
	Double   *string    `xml:"double"`
	Base64   *string    `xml:"base64"`
	DateTime *string    `xml:"dateTime.iso8601"`
	Struct   *structXML `xml:"struct"`
	Array    *arrayXML  `xml:"array"`
	Nil      *struct{}  `xml:"nil"`
	Text     string     `xml:",chardata"`
}

type structXML struct {
	Members []memberXML `xml:"member"`
}

type memberXML struct {
	Name  string   `xml:"name"`
	Value valueXML `xml:"value"`
}

type arrayXML struct {
	Values []valueXML `xml:"data>value"`
}

func (v valueXML) decode() (any, error) {
	switch {
	case v.String != nil:
		return *v.String, nil
	case v.Int != nil:
		return parseInt(*v.Int)
	case v.I4 != nil:
		return parseInt(*v.I4)
	case v.I8 != nil:
		return parseInt(*v.I8)
	case v.Boolean != nil:
		switch strings.TrimSpace(*v.Boolean) {
		case "1", "true":
			return true, nil
		case "0", "false":
			return false, nil
		default:
			return nil, fmt.Errorf("invalid boolean %q", *v.Boolean)
		}
	case v.Double != nil:
		f, err := strconv.ParseFloat(strings.TrimSpace(*v.Double), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid double %q: %w", *v.Double, err)
		}
		return f, nil
	case v.Base64 != nil:
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(*v.Base64))
		if err != nil {
			return nil, fmt.Errorf("invalid base64: %w", err)
		}
		return data, nil
	case v.DateTime != nil:
		t, err := time.Parse(dateTimeLayout, strings.TrimSpace(*v.DateTime))
		if err != nil {
			return nil, fmt.Errorf("invalid datetime %q: %w", *v.DateTime, err)
		}
		return t, nil
	case v.Struct != nil:
		out := make(Struct, len(v.Struct.Members))
		for _, member := range v.Struct.Members {
			decoded, err := member.Value.decode()
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", member.Name, err)
			}
			out[member.Name] = decoded
		}
		return out, nil
	case v.Array != nil:
		out := make([]any, 0, len(v.Array.Values))
		for i, item := range v.Array.Values {
			decoded, err := item.decode()
			if err != nil {
				return nil, fmt.Errorf("array item %d: %w", i, err)
			}
			out = append(out, decoded)
		}
		return out, nil
	case v.Nil != nil:
		return nil, nil
	default:
		return v.Text, nil
	}
}

func parseInt(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", raw, err)
	}
	return n, nil
}

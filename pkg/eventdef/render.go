package eventdef

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatters lets a host application hook the "param" and "a" tags.
// NewConfiguration installs the identity formatter pair; the zero value has
// nil funcs, which Render calls without checking.
type Formatters struct {
	Param func(content string) string
	URL   func(content, link string) string
}

func defaultFormatters() Formatters {
	return Formatters{
		Param: func(content string) string { return content },
		URL:   func(content, link string) string { return content },
	}
}

// Configuration is the renderer's input besides the template and arguments:
// an active profile and the tag formatters.
type Configuration struct {
	Profile    string // "dev" or "normal"
	Formatters Formatters
}

// NewConfiguration returns the documented defaults: profile "dev", identity
// formatters.
func NewConfiguration() Configuration {
	return Configuration{
		Profile:    "dev",
		Formatters: defaultFormatters(),
	}
}

// SetProfile applies the profile only if it is one of the two recognized
// values; any other value is ignored and the previous setting is kept.
func (c *Configuration) SetProfile(profile string) {
	if profile == "dev" || profile == "normal" {
		c.Profile = profile
	}
}

// Render expands template against args and cfg in a single left-to-right
// pass: backslash-escapes are stripped, <tag>...</tag> constructs are
// resolved, and {i} placeholders are substituted by the i-th argument's
// rendered value. Substituted text (formatter output, placeholder values) is
// never re-scanned.
func Render(template string, args []Argument, store *Store, eventNamespace string, cfg Configuration) string {
	r := renderer{
		src:            []rune(template),
		args:           args,
		store:          store,
		eventNamespace: eventNamespace,
		cfg:            cfg,
	}
	return r.run()
}

type renderer struct {
	src            []rune
	args           []Argument
	store          *Store
	eventNamespace string
	cfg            Configuration
}

func (r *renderer) run() string {
	var out strings.Builder
	i := 0
	n := len(r.src)

	for i < n {
		c := r.src[i]

		switch {
		case c == '\\':
			// Escape: drop the backslash, pass the following rune through
			// literally without further processing.
			if i+1 < n {
				out.WriteRune(r.src[i+1])
				i += 2
			} else {
				i++
			}

		case c == '<':
			consumed, replacement, handled := r.tryTag(i)
			if handled {
				out.WriteString(replacement)
				i += consumed
			} else {
				// No matching closing tag: leave the '<' in place and keep
				// scanning from the next rune.
				out.WriteRune(c)
				i++
			}

		case c == '{':
			consumed, replacement, handled := r.tryPlaceholder(i)
			if handled {
				out.WriteString(replacement)
				i += consumed
			} else {
				out.WriteRune(c)
				i++
			}

		default:
			out.WriteRune(c)
			i++
		}
	}

	return out.String()
}

// tryTag attempts to parse a tag construct starting at '<' (index i). On
// success it returns how many runes to skip and the text to splice in.
func (r *renderer) tryTag(i int) (consumed int, replacement string, ok bool) {
	closeBracket := indexUnescaped(r.src, i+1, '>')
	if closeBracket < 0 {
		return 0, "", false
	}

	header := string(r.src[i+1 : closeBracket])
	tagName, attrName, attrValue := splitTagHeader(header)
	if tagName == "" {
		return 0, "", false
	}

	closingTag := "</" + tagName + ">"
	closingPos := indexOf(r.src, closeBracket+1, closingTag)
	if closingPos < 0 {
		return 0, "", false
	}

	content := string(r.src[closeBracket+1 : closingPos])
	afterClosing := closingPos + len([]rune(closingTag))

	var replaced string
	switch tagName {
	case "param":
		replaced = r.cfg.Formatters.Param(content)
	case "a":
		link := attrValue
		if attrName != "href" || link == "" {
			link = content
		}
		replaced = r.cfg.Formatters.URL(content, link)
	case "profile":
		replaced = r.renderProfileTag(attrName, attrValue, content)
	default:
		replaced = ""
	}

	return afterClosing - i, replaced, true
}

func (r *renderer) renderProfileTag(attrName, attrValue, content string) string {
	if attrName != "name" || attrValue == "" {
		return content
	}
	if strings.HasPrefix(attrValue, "!") {
		if r.cfg.Profile == attrValue[1:] {
			return ""
		}
		return content
	}
	if r.cfg.Profile != attrValue {
		return ""
	}
	return content
}

// splitTagHeader parses `tag attr="value"` (the text between '<' and the
// matching '>'), extracting only the first name="value" pair.
func splitTagHeader(header string) (tagName, attrName, attrValue string) {
	before, rest, hasAttrs := strings.Cut(header, " ")
	tagName = before
	if !hasAttrs {
		return
	}

	eq := strings.Index(rest, "=\"")
	if eq < 0 {
		return
	}
	valueStart := eq + 2
	valueEnd := strings.Index(rest[valueStart:], "\"")
	if valueEnd < 0 {
		return
	}

	attrName = rest[:eq]
	attrValue = rest[valueStart : valueStart+valueEnd]
	return
}

// tryPlaceholder attempts to parse a {i} placeholder starting at '{'
// (index i).
func (r *renderer) tryPlaceholder(i int) (consumed int, replacement string, ok bool) {
	j := i + 1
	start := j
	for j < len(r.src) && r.src[j] >= '0' && r.src[j] <= '9' {
		j++
	}
	if j == start || j >= len(r.src) || r.src[j] != '}' {
		return 0, "", false
	}

	num, err := strconv.Atoi(string(r.src[start:j]))
	if err != nil || num < 1 {
		return 0, "", false
	}

	return j + 1 - i, r.renderArgument(num), true
}

func (r *renderer) renderArgument(oneBasedIndex int) string {
	idx := oneBasedIndex - 1
	if idx < 0 || idx >= len(r.args) {
		// Missing argument (buffer was too short to decode it): the literal
		// placeholder text is left in place.
		return fmt.Sprintf("{%d}", oneBasedIndex)
	}
	arg := r.args[idx]

	if arg.IsEnum() {
		enumDef := r.store.EnumAt(arg.EnumIndex)
		if enumDef != nil {
			if description, found := enumDef.Describe(arg.AsUint64()); found {
				return description
			}
		}
		return "(unknown)"
	}

	return formatNumeric(arg)
}

func formatNumeric(arg Argument) string {
	switch arg.Type {
	case Uint8:
		return strconv.FormatUint(uint64(arg.U8), 10)
	case Int8:
		return strconv.FormatInt(int64(arg.I8), 10)
	case Uint16:
		return strconv.FormatUint(uint64(arg.U16), 10)
	case Int16:
		return strconv.FormatInt(int64(arg.I16), 10)
	case Uint32:
		return strconv.FormatUint(uint64(arg.U32), 10)
	case Int32:
		return strconv.FormatInt(int64(arg.I32), 10)
	case Uint64:
		return strconv.FormatUint(arg.U64, 10)
	case Int64:
		return strconv.FormatInt(arg.I64, 10)
	case Float32:
		return strconv.FormatFloat(float64(arg.F32), 'f', arg.NumDecimals, 32)
	default:
		return ""
	}
}

// indexUnescaped finds the next occurrence of target starting at i, skipping
// (and leaving alone) any rune immediately following a backslash.
func indexUnescaped(src []rune, i int, target rune) int {
	for ; i < len(src); i++ {
		if src[i] == '\\' {
			i++
			continue
		}
		if src[i] == target {
			return i
		}
	}
	return -1
}

// indexOf finds the first occurrence of the literal substring target in src,
// starting the search at rune index i.
func indexOf(src []rune, i int, target string) int {
	targetRunes := []rune(target)
	if len(targetRunes) == 0 {
		return -1
	}
	for ; i+len(targetRunes) <= len(src); i++ {
		if runesEqual(src[i:i+len(targetRunes)], targetRunes) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

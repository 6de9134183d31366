package content

import "golang.org/x/net/html"

// SpanKind classifies a CodeSpan. The enumeration mirrors the short class
// names the highlighter emits; SpanPlain covers code text carried outside
// any span.
type SpanKind uint8

const (
	SpanPlain SpanKind = iota
	SpanHighlightedLines
	SpanWhitespace
	SpanEscape
	SpanError
	SpanOther
	SpanKeyword
	SpanKeywordConstant
	SpanKeywordDeclaration
	SpanKeywordNamespace
	SpanKeywordPseudo
	SpanKeywordReserved
	SpanKeywordType
	SpanName
	SpanNameAttribute
	SpanNameBuiltin
	SpanNameBuiltinPseudo
	SpanNameClass
	SpanNameConstant
	SpanNameDecorator
	SpanNameEntity
	SpanNameException
	SpanNameFunction
	SpanNameFunctionMagic
	SpanNameLabel
	SpanNameNamespace
	SpanNameOther
	SpanNameProperty
	SpanNameTag
	SpanNameVariable
	SpanNameVariableClass
	SpanNameVariableGlobal
	SpanNameVariableInstance
	SpanNameVariableMagic
	SpanLiteral
	SpanLiteralDate
	SpanString
	SpanStringAffix
	SpanStringBacktick
	SpanStringChar
	SpanStringDelimiter
	SpanStringDoc
	SpanStringDouble
	SpanStringEscape
	SpanStringHeredoc
	SpanStringInterpol
	SpanStringOther
	SpanStringRegex
	SpanStringSingle
	SpanStringSymbol
	SpanNumber
	SpanNumberBin
	SpanNumberFloat
	SpanNumberHex
	SpanNumberInteger
	SpanNumberIntegerLong
	SpanNumberOct
	SpanOperator
	SpanOperatorWord
	SpanPunctuation
	SpanPunctuationMarker
	SpanComment
	SpanCommentHashbang
	SpanCommentMultiline
	SpanCommentPreproc
	SpanCommentPreprocFile
	SpanCommentSingle
	SpanCommentSpecial
	SpanGeneric
	SpanGenericDeleted
	SpanGenericEmph
	SpanGenericEmphStrong
	SpanGenericError
	SpanGenericHeading
	SpanGenericInserted
	SpanGenericOutput
	SpanGenericPrompt
	SpanGenericStrong
	SpanGenericSubheading
	SpanGenericTraceback
)

// spanKinds maps the highlighter's short class names to kinds. The table
// is closed: a class missing here fails the whole block.
var spanKinds = map[string]SpanKind{
	"hll": SpanHighlightedLines,
	"w":   SpanWhitespace,
	"esc": SpanEscape,
	"err": SpanError,
	"x":   SpanOther,
	"k":   SpanKeyword,
	"kc":  SpanKeywordConstant,
	"kd":  SpanKeywordDeclaration,
	"kn":  SpanKeywordNamespace,
	"kp":  SpanKeywordPseudo,
	"kr":  SpanKeywordReserved,
	"kt":  SpanKeywordType,
	"n":   SpanName,
	"na":  SpanNameAttribute,
	"nb":  SpanNameBuiltin,
	"bp":  SpanNameBuiltinPseudo,
	"nc":  SpanNameClass,
	"no":  SpanNameConstant,
	"nd":  SpanNameDecorator,
	"ni":  SpanNameEntity,
	"ne":  SpanNameException,
	"nf":  SpanNameFunction,
	"fm":  SpanNameFunctionMagic,
	"nl":  SpanNameLabel,
	"nn":  SpanNameNamespace,
	"nx":  SpanNameOther,
	"py":  SpanNameProperty,
	"nt":  SpanNameTag,
	"nv":  SpanNameVariable,
	"vc":  SpanNameVariableClass,
	"vg":  SpanNameVariableGlobal,
	"vi":  SpanNameVariableInstance,
	"vm":  SpanNameVariableMagic,
	"l":   SpanLiteral,
	"ld":  SpanLiteralDate,
	"s":   SpanString,
	"sa":  SpanStringAffix,
	"sb":  SpanStringBacktick,
	"sc":  SpanStringChar,
	"dl":  SpanStringDelimiter,
	"sd":  SpanStringDoc,
	"s2":  SpanStringDouble,
	"se":  SpanStringEscape,
	"sh":  SpanStringHeredoc,
	"si":  SpanStringInterpol,
	"sx":  SpanStringOther,
	"sr":  SpanStringRegex,
	"s1":  SpanStringSingle,
	"ss":  SpanStringSymbol,
	"m":   SpanNumber,
	"mb":  SpanNumberBin,
	"mf":  SpanNumberFloat,
	"mh":  SpanNumberHex,
	"mi":  SpanNumberInteger,
	"il":  SpanNumberIntegerLong,
	"mo":  SpanNumberOct,
	"o":   SpanOperator,
	"ow":  SpanOperatorWord,
	"p":   SpanPunctuation,
	"pm":  SpanPunctuationMarker,
	"c":   SpanComment,
	"ch":  SpanCommentHashbang,
	"cm":  SpanCommentMultiline,
	"cp":  SpanCommentPreproc,
	"cpf": SpanCommentPreprocFile,
	"c1":  SpanCommentSingle,
	"cs":  SpanCommentSpecial,
	"g":   SpanGeneric,
	"gd":  SpanGenericDeleted,
	"ge":  SpanGenericEmph,
	"ges": SpanGenericEmphStrong,
	"gr":  SpanGenericError,
	"gh":  SpanGenericHeading,
	"gi":  SpanGenericInserted,
	"go":  SpanGenericOutput,
	"gp":  SpanGenericPrompt,
	"gs":  SpanGenericStrong,
	"gu":  SpanGenericSubheading,
	"gt":  SpanGenericTraceback,
}

var spanKindNames = map[SpanKind]string{
	SpanPlain:                "Plain",
	SpanHighlightedLines:     "HighlightedLines",
	SpanWhitespace:           "Whitespace",
	SpanEscape:               "Escape",
	SpanError:                "Error",
	SpanOther:                "Other",
	SpanKeyword:              "Keyword",
	SpanKeywordConstant:      "KeywordConstant",
	SpanKeywordDeclaration:   "KeywordDeclaration",
	SpanKeywordNamespace:     "KeywordNamespace",
	SpanKeywordPseudo:        "KeywordPseudo",
	SpanKeywordReserved:      "KeywordReserved",
	SpanKeywordType:          "KeywordType",
	SpanName:                 "Name",
	SpanNameAttribute:        "NameAttribute",
	SpanNameBuiltin:          "NameBuiltin",
	SpanNameBuiltinPseudo:    "NameBuiltinPseudo",
	SpanNameClass:            "NameClass",
	SpanNameConstant:         "NameConstant",
	SpanNameDecorator:        "NameDecorator",
	SpanNameEntity:           "NameEntity",
	SpanNameException:        "NameException",
	SpanNameFunction:         "NameFunction",
	SpanNameFunctionMagic:    "NameFunctionMagic",
	SpanNameLabel:            "NameLabel",
	SpanNameNamespace:        "NameNamespace",
	SpanNameOther:            "NameOther",
	SpanNameProperty:         "NameProperty",
	SpanNameTag:              "NameTag",
	SpanNameVariable:         "NameVariable",
	SpanNameVariableClass:    "NameVariableClass",
	SpanNameVariableGlobal:   "NameVariableGlobal",
	SpanNameVariableInstance: "NameVariableInstance",
	SpanNameVariableMagic:    "NameVariableMagic",
	SpanLiteral:              "Literal",
	SpanLiteralDate:          "LiteralDate",
	SpanString:               "String",
	SpanStringAffix:          "StringAffix",
	SpanStringBacktick:       "StringBacktick",
	SpanStringChar:           "StringChar",
	SpanStringDelimiter:      "StringDelimiter",
	SpanStringDoc:            "StringDoc",
	SpanStringDouble:         "StringDouble",
	SpanStringEscape:         "StringEscape",
	SpanStringHeredoc:        "StringHeredoc",
	SpanStringInterpol:       "StringInterpol",
	SpanStringOther:          "StringOther",
	SpanStringRegex:          "StringRegex",
	SpanStringSingle:         "StringSingle",
	SpanStringSymbol:         "StringSymbol",
	SpanNumber:               "Number",
	SpanNumberBin:            "NumberBin",
	SpanNumberFloat:          "NumberFloat",
	SpanNumberHex:            "NumberHex",
	SpanNumberInteger:        "NumberInteger",
	SpanNumberIntegerLong:    "NumberIntegerLong",
	SpanNumberOct:            "NumberOct",
	SpanOperator:             "Operator",
	SpanOperatorWord:         "OperatorWord",
	SpanPunctuation:          "Punctuation",
	SpanPunctuationMarker:    "PunctuationMarker",
	SpanComment:              "Comment",
	SpanCommentHashbang:      "CommentHashbang",
	SpanCommentMultiline:     "CommentMultiline",
	SpanCommentPreproc:       "CommentPreproc",
	SpanCommentPreprocFile:   "CommentPreprocFile",
	SpanCommentSingle:        "CommentSingle",
	SpanCommentSpecial:       "CommentSpecial",
	SpanGeneric:              "Generic",
	SpanGenericDeleted:       "GenericDeleted",
	SpanGenericEmph:          "GenericEmph",
	SpanGenericEmphStrong:    "GenericEmphStrong",
	SpanGenericError:         "GenericError",
	SpanGenericHeading:       "GenericHeading",
	SpanGenericInserted:      "GenericInserted",
	SpanGenericOutput:        "GenericOutput",
	SpanGenericPrompt:        "GenericPrompt",
	SpanGenericSubheading:    "GenericSubheading",
	SpanGenericStrong:        "GenericStrong",
	SpanGenericTraceback:     "GenericTraceback",
}

func (k SpanKind) String() string {
	if name, ok := spanKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// parseCodeBlock converts a highlighted listing into a CodeBlock. The
// renderer emits a rigid skeleton, a pre holding an optional empty span
// and then the code element; any other shape, and any span the kind
// table does not know, fails the whole container.
func parseCodeBlock(div *html.Node) BlockNode {
	code, ok := codeElement(div)
	if !ok {
		return unimplemented(div)
	}
	spans, ok := classifySpans(code)
	if !ok {
		return unimplemented(div)
	}
	return &CodeBlock{Spans: spans}
}

func codeElement(div *html.Node) (*html.Node, bool) {
	kids := children(div)
	if len(kids) != 1 || !isElement(kids[0], "pre") {
		return nil, false
	}
	pre := children(kids[0])
	switch len(pre) {
	case 1:
		if isElement(pre[0], "code") {
			return pre[0], true
		}
	case 2:
		// Leading filler span, then the code element.
		if isElement(pre[0], "span") && pre[0].FirstChild == nil && isElement(pre[1], "code") {
			return pre[1], true
		}
	}
	return nil, false
}

// classifySpans flattens the code element into spans, merging adjacent
// runs of the same kind. Text outside any span is SpanPlain. Highlighted
// line wrappers and unknown or multi-class spans are not representable,
// so they report failure rather than a partial listing.
func classifySpans(code *html.Node) ([]CodeSpan, bool) {
	var spans []CodeSpan
	add := func(kind SpanKind, text string) {
		if text == "" {
			return
		}
		if n := len(spans); n > 0 && spans[n-1].Kind == kind {
			spans[n-1].Text += text
			return
		}
		spans = append(spans, CodeSpan{Kind: kind, Text: text})
	}

	for n := code.FirstChild; n != nil; n = n.NextSibling {
		switch {
		case n.Type == html.TextNode:
			add(SpanPlain, n.Data)
		case isElement(n, "span"):
			classes := classList(n)
			if len(classes) != 1 {
				return nil, false
			}
			kind, ok := spanKinds[classes[0]]
			if !ok || kind == SpanHighlightedLines {
				return nil, false
			}
			text, ok := soleText(n)
			if !ok {
				return nil, false
			}
			add(kind, text)
		default:
			return nil, false
		}
	}
	return spans, true
}

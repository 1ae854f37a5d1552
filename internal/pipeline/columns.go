package pipeline

// Column names of the stage artifacts, as read by EDICTOR and LingPy.
const (
	ColID            = "ID"
	ColDoculectID    = "DOCULECT_ID"
	ColDoculect      = "DOCULECT"
	ColConceptID     = "CONCEPT_ID"
	ColConcept       = "CONCEPT"
	ColIPA           = "IPA"
	ColTokens        = "TOKENS"
	ColAlignment     = "ALIGNMENT"
	ColAutoAlignment = "AUTO_ALIGNMENT"
	ColCognateSet    = "COGNATE_SET"
	ColAutoCogID     = "AUTO_COGID"
	ColLongCogID     = "LONG_COGID"
	ColCogID         = "COGID"
	ColComment       = "COMMENT"
	ColFamily        = "FAMILY"
	ColRegion        = "REGION"
)

// cldfColumns maps CLDF word-list headers to their LingPy names. Any other
// header is upper-cased.
var cldfColumns = map[string]string{
	"Feature_ID":               ColConceptID,
	"Language_ID":              ColDoculectID,
	"Cognate Set":              ColCognateSet,
	"English":                  ColConcept,
	"Language name (-dialect)": ColDoculect,
	"Value":                    ColIPA,
}

// cognateColumns are required in every cognate table read by stage 2.
var cognateColumns = []string{ColDoculect, ColDoculectID, ColConcept, ColConceptID, ColIPA}

package testutils

const (
	TokenUrl  = "http://fakeurl:3001/oauth2/v1/token"
	UploadUrl = "http://fakeurl:3001/qkview-analyzer/api/qkviews"
)

// Endpoint describes a mocked HTTP endpoint for table-driven command tests.
type Endpoint struct {
	Method string
	Url    string
	Data   interface{}
	Code   int
}

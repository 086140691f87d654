// Package spellwizardv1alpha1 defines the spell wizard gRPC service: request and
// response messages, the service descriptor and a typed client.
//
// Messages are plain Go structs carried by a JSON codec registered under the
// "json" content-subtype. Clients built with NewSpellWizardServiceClient select
// it on every call.
package spellwizardv1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype the service is served under
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals messages as JSON
type Codec struct{}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the codec's content-subtype
func (Codec) Name() string {
	return CodecName
}

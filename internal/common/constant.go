package common

// AccessTokenHeaderName is the gRPC metadata key (and HTTP header) used to
// carry the access token on inbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultModule is used when a caller does not name the owning module.
const DefaultModule = "generic"

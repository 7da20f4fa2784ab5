package l3_service

// ValidationError means the caller sent something unusable. The api
// layer maps it to a 400
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

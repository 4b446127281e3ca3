package model

// SignedUpload is issued per requested file name. URL is where the object
// will be publicly readable once uploaded; CompleteURL is the short-lived
// presigned PUT URL the browser uploads the bytes to.
type SignedUpload struct {
	URL         string `json:"url"`
	CompleteURL string `json:"completeUrl"`
}

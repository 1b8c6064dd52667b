package biometric

// Anchor indices into the 468-point face mesh used by the quality scorer.
const (
	NoseTipIndex        = 1
	LeftEyeCornerIndex  = 33
	RightEyeCornerIndex = 263
)

// KeyPointSchema lists the face mesh indices whose (x, y, z) coordinates
// make up an embedding. 78 points, so embeddings are 234 floats long.
var KeyPointSchema = []int{
	// face oval
	10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288,
	397, 365, 379, 378, 400, 377, 152, 148, 176, 149, 150, 136,
	172, 58, 132, 93, 234, 127, 162, 21, 54, 103, 67, 109,
	// lips
	61, 146, 91, 181, 84, 17, 314, 405, 321, 375,
	291, 308, 324, 318, 402, 317, 14, 87, 178, 88,
	// left eye
	33, 133, 160, 159, 158, 157, 173, 246,
	// right eye
	263, 362, 387, 386, 385, 384, 398, 466,
	// eyebrows
	70, 105, 300, 334,
	// nose
	1, 4,
}

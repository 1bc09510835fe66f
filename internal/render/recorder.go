package render

// Recorder is a Sink that keeps every scene it is given.
type Recorder struct {
	Scenes []Scene
	Err    error
}

func (r *Recorder) Draw(s Scene) error {
	r.Scenes = append(r.Scenes, s)
	return r.Err
}

// Last returns the most recent scene, or false if nothing was drawn.
func (r *Recorder) Last() (Scene, bool) {
	if len(r.Scenes) == 0 {
		return Scene{}, false
	}
	return r.Scenes[len(r.Scenes)-1], true
}

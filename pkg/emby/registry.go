package emby

// constructor builds the concrete variant for one server type tag.
type constructor func(raw map[string]any, conn Connector) Object

func ctor[T Object](fn func(map[string]any, Connector) T) constructor {
	return func(raw map[string]any, conn Connector) Object { return fn(raw, conn) }
}

// registry maps the server's Type tag to the variant constructor. The
// table is fixed at startup and read-only afterwards; tags the client
// does not know about construct the generic Entity.
var registry = map[string]constructor{
	"Video":       ctor(newVideo),
	"Movie":       ctor(newMovie),
	"Trailer":     ctor(newTrailer),
	"AdultVideo":  ctor(newVideo),
	"MusicVideo":  ctor(newMusicVideo),
	"Episode":     ctor(newEpisode),
	"Series":      ctor(newSeries),
	"Season":      ctor(newSeason),
	"Audio":       ctor(newAudio),
	"MusicAlbum":  ctor(newAlbum),
	"MusicArtist": ctor(newArtist),
	"Playlist":    ctor(newPlaylist),
	"BoxSet":      ctor(newBoxSet),
	"Person":      ctor(newPerson),
	"Folder":      ctor(newFolder),
	"Device":      ctor(newDevice),
	"User":        ctor(newUser),
}

// classify returns the constructor for a type tag. Unknown or missing
// tags are never an error; they map to the generic Entity.
func classify(tag string) constructor {
	if c, ok := registry[tag]; ok {
		return c
	}
	return ctor(newEntity)
}

package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sayan42/vidmesh/backend/internal/models"
	"github.com/sayan42/vidmesh/backend/internal/repositories"
)

// edgeKey identifies one like edge across all three target kinds.
type edgeKey struct {
	kind    models.TargetKind
	target  string
	subject uint
}

// fakeLikeStore is an in-memory LikeEdges. The mutex makes Create atomic so
// concurrent toggles race against a real uniqueness constraint, the same way
// they would against the database index.
type fakeLikeStore struct {
	mu    sync.Mutex
	edges map[edgeKey]bool
	order []edgeKey
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{edges: make(map[edgeKey]bool)}
}

func (f *fakeLikeStore) Exists(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.edges[edgeKey{kind, targetID, likedBy}], nil
}

func (f *fakeLikeStore) Create(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := edgeKey{kind, targetID, likedBy}
	if f.edges[k] {
		return repositories.ErrDuplicateEdge
	}
	f.edges[k] = true
	f.order = append(f.order, k)
	return nil
}

func (f *fakeLikeStore) Delete(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := edgeKey{kind, targetID, likedBy}
	if !f.edges[k] {
		return repositories.ErrEdgeNotFound
	}
	delete(f.edges, k)
	return nil
}

func (f *fakeLikeStore) CountByTarget(ctx context.Context, kind models.TargetKind, targetID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for k := range f.edges {
		if k.kind == kind && k.target == targetID {
			n++
		}
	}
	return n, nil
}

func (f *fakeLikeStore) CountByTargets(ctx context.Context, kind models.TargetKind, targetIDs []string) (int64, error) {
	var n int64
	for _, id := range targetIDs {
		c, _ := f.CountByTarget(ctx, kind, id)
		n += c
	}
	return n, nil
}

func (f *fakeLikeStore) LikedTargetIDs(ctx context.Context, kind models.TargetKind, likedBy uint) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// insertion order; the real store returns newest first
	var ids []string
	for i := len(f.order) - 1; i >= 0; i-- {
		k := f.order[i]
		if k.kind == kind && k.subject == likedBy && f.edges[k] {
			ids = append(ids, k.target)
		}
	}
	return ids, nil
}

// fakeSubscriptionStore is an in-memory SubscriptionEdges.
type fakeSubscriptionStore struct {
	mu     sync.Mutex
	edges  map[[2]uint]bool // [channel, subscriber]
	writes int
	users  map[uint]models.User
}

func newFakeSubscriptionStore() *fakeSubscriptionStore {
	return &fakeSubscriptionStore{edges: make(map[[2]uint]bool), users: make(map[uint]models.User)}
}

func (f *fakeSubscriptionStore) Exists(ctx context.Context, channel, subscriber uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.edges[[2]uint{channel, subscriber}], nil
}

func (f *fakeSubscriptionStore) Create(ctx context.Context, channel, subscriber uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	k := [2]uint{channel, subscriber}
	if f.edges[k] {
		return repositories.ErrDuplicateEdge
	}
	f.edges[k] = true
	return nil
}

func (f *fakeSubscriptionStore) Delete(ctx context.Context, channel, subscriber uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	k := [2]uint{channel, subscriber}
	if !f.edges[k] {
		return repositories.ErrEdgeNotFound
	}
	delete(f.edges, k)
	return nil
}

func (f *fakeSubscriptionStore) CountByChannel(ctx context.Context, channel uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for k := range f.edges {
		if k[0] == channel {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubscriptionStore) Subscribers(ctx context.Context, channel uint) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []models.User
	for k := range f.edges {
		if k[0] == channel {
			users = append(users, f.users[k[1]])
		}
	}
	return users, nil
}

func (f *fakeSubscriptionStore) Channels(ctx context.Context, subscriber uint) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []models.User
	for k := range f.edges {
		if k[1] == subscriber {
			users = append(users, f.users[k[0]])
		}
	}
	return users, nil
}

// fakeVideoCatalog is an in-memory VideoCatalog.
type fakeVideoCatalog struct {
	mu     sync.Mutex
	videos map[primitive.ObjectID]*models.Video
}

func newFakeVideoCatalog(videos ...*models.Video) *fakeVideoCatalog {
	f := &fakeVideoCatalog{videos: make(map[primitive.ObjectID]*models.Video)}
	for _, v := range videos {
		f.videos[v.ID] = v
	}
	return f
}

func (f *fakeVideoCatalog) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.videos[id]
	return ok, nil
}

func (f *fakeVideoCatalog) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Video
	for _, id := range ids {
		if v, ok := f.videos[id]; ok {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVideoCatalog) ByOwner(ctx context.Context, owner uint) ([]models.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Video
	for _, v := range f.videos {
		if v.Owner == owner {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVideoCatalog) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.videos[id]; ok {
		v.Views++
	}
	return nil
}

// fakeChecker answers existence from a fixed id set. Serves as EntityChecker
// and UserDirectory.
type fakeChecker map[uint]bool

func (f fakeChecker) Exists(ctx context.Context, id uint) (bool, error) { return f[id], nil }

// fakeHistoryStore applies the recency transform in memory.
type fakeHistoryStore struct {
	mu    sync.Mutex
	lists map[uint][]primitive.ObjectID
	limit int
}

func newFakeHistoryStore(limit int) *fakeHistoryStore {
	return &fakeHistoryStore{lists: make(map[uint][]primitive.ObjectID), limit: limit}
}

func (f *fakeHistoryStore) Push(ctx context.Context, userID uint, videoID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[userID] = models.PushRecent(f.lists[userID], videoID, f.limit)
	return nil
}

func (f *fakeHistoryStore) VideoIDs(ctx context.Context, userID uint) ([]primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists[userID], nil
}

// fakePlaylistStore is an in-memory PlaylistStore.
type fakePlaylistStore struct {
	mu        sync.Mutex
	playlists map[primitive.ObjectID]*models.Playlist
}

func newFakePlaylistStore(playlists ...*models.Playlist) *fakePlaylistStore {
	f := &fakePlaylistStore{playlists: make(map[primitive.ObjectID]*models.Playlist)}
	for _, p := range playlists {
		f.playlists[p.ID] = p
	}
	return f
}

func (f *fakePlaylistStore) Create(ctx context.Context, playlist *models.Playlist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if playlist.ID.IsZero() {
		playlist.ID = primitive.NewObjectID()
	}
	f.playlists[playlist.ID] = playlist
	return nil
}

func (f *fakePlaylistStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.playlists[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	cp.Videos = append([]primitive.ObjectID(nil), p.Videos...)
	return &cp, nil
}

func (f *fakePlaylistStore) ByOwner(ctx context.Context, owner uint) ([]models.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Playlist
	for _, p := range f.playlists {
		if p.Owner == owner {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlaylistStore) ReplaceVideos(ctx context.Context, id primitive.ObjectID, videos []primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.playlists[id]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Videos = append([]primitive.ObjectID(nil), videos...)
	return nil
}

func (f *fakePlaylistStore) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.playlists[id]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Name = name
	p.Description = description
	return nil
}

func (f *fakePlaylistStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.playlists[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.playlists, id)
	return nil
}

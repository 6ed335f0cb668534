package stats

// RuleKind selects which Snapshot field an achievement threshold applies to.
type RuleKind string

const (
	RuleTotalStories   RuleKind = "total_stories"
	RuleGenreCount     RuleKind = "genre_count"
	RuleDistinctGenres RuleKind = "distinct_genres"
	RuleWordUsed       RuleKind = "word_used"
	RuleWordFrequency  RuleKind = "word_frequency"
	RuleSaves          RuleKind = "saves"
	RuleRegenerations  RuleKind = "regenerations"
	RuleSessionStories RuleKind = "session_stories"
)

// Achievement is a declarative unlock rule: kind, threshold and an optional
// genre or word the rule is scoped to.
type Achievement struct {
	ID        string
	Name      string
	Desc      string
	Icon      string
	Kind      RuleKind
	Threshold int
	Genre     string
	Word      string
}

// Met evaluates the rule against a stats snapshot.
func (a Achievement) Met(s Snapshot) bool {
	switch a.Kind {
	case RuleTotalStories:
		return s.TotalStories >= a.Threshold
	case RuleGenreCount:
		return s.GenreCounts[a.Genre] >= a.Threshold
	case RuleDistinctGenres:
		return s.DistinctGenres >= a.Threshold
	case RuleWordUsed:
		return s.WordCounts[a.Word] >= 1
	case RuleWordFrequency:
		return s.MaxWordCount >= a.Threshold
	case RuleSaves:
		return s.Saves >= a.Threshold
	case RuleRegenerations:
		return s.Regenerations >= a.Threshold
	case RuleSessionStories:
		return s.SessionStories >= a.Threshold
	}
	return false
}

var achievements = []Achievement{
	{ID: "first_story", Name: "Origin Story", Desc: "Generated your very first MadVerse tale.", Icon: "🌟", Kind: RuleTotalStories, Threshold: 1},
	{ID: "ten_stories", Name: "Prolific Chaos Merchant", Desc: "Generated 10 stories. Productivity, but wrong.", Icon: "📚", Kind: RuleTotalStories, Threshold: 10},
	{ID: "fifty_stories", Name: "Chaos Architect", Desc: "50 stories generated. You have a problem.", Icon: "🏛️", Kind: RuleTotalStories, Threshold: 50},
	{ID: "all_genres", Name: "Genre Omnivore", Desc: "Played every genre at least once.", Icon: "🎭", Kind: RuleDistinctGenres, Threshold: 7},
	{ID: "used_banana", Name: "Banana Connoisseur", Desc: "Used the word 'banana' in any story.", Icon: "🍌", Kind: RuleWordUsed, Word: "banana"},
	{ID: "horror_fan", Name: "Scared of Nothing", Desc: "Played Horror 5 times.", Icon: "🎃", Kind: RuleGenreCount, Genre: "horror", Threshold: 5},
	{ID: "ai_explorer", Name: "Trust the Machine", Desc: "Used the AI Narrator genre.", Icon: "🤖", Kind: RuleGenreCount, Genre: "ai", Threshold: 1},
	{ID: "ai_devotee", Name: "AI Devotee", Desc: "Used AI Narrator 5 times. Concerning.", Icon: "⚡", Kind: RuleGenreCount, Genre: "ai", Threshold: 5},
	{ID: "saved_story", Name: "Literary Archivist", Desc: "Saved your first story to a file.", Icon: "💾", Kind: RuleSaves, Threshold: 1},
	{ID: "same_words", Name: "New Story, Same Chaos", Desc: "Regenerated with the same words.", Icon: "🔁", Kind: RuleRegenerations, Threshold: 1},
	{ID: "chaos_session", Name: "Maximum Chaos", Desc: "Played 5 stories in a single session.", Icon: "🌪️", Kind: RuleSessionStories, Threshold: 5},
	{ID: "academic_pain", Name: "Peer Reviewed", Desc: "Survived the Academic genre 3 times.", Icon: "🏫", Kind: RuleGenreCount, Genre: "academic", Threshold: 3},
	{ID: "existential_spiral", Name: "The Void Stares Back", Desc: "Played Existential 5 times. Are you okay?", Icon: "🧠", Kind: RuleGenreCount, Genre: "existential", Threshold: 5},
	{ID: "word_recycler", Name: "Word Hoarder", Desc: "Used the same word 10+ times across stories.", Icon: "♻️", Kind: RuleWordFrequency, Threshold: 10},
}

// Achievements returns the fixed rule list in display order.
func Achievements() []Achievement {
	return achievements
}

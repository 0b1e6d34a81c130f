package deck

import (
	"fmt"
	"sync"

	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/model"
)

// StaticProvider serves the built-in 36-card catalog.
type StaticProvider struct{}

// AllCards returns the validated catalog.
func (StaticProvider) AllCards() ([]model.Card, error) {
	return Catalog()
}

var (
	catalogOnce sync.Once
	catalog     []model.Card
	catalogErr  error
)

// Catalog returns the 36-card Lenormand catalog, validating it on first use.
// Combo entries must reference existing card ids; a bad catalog is a
// programming error surfaced at load, not at lookup.
func Catalog() ([]model.Card, error) {
	catalogOnce.Do(func() {
		catalogErr = validateCatalog(cards)
		if catalogErr == nil {
			catalog = cards
		}
	})
	return catalog, catalogErr
}

func validateCatalog(cards []model.Card) error {
	if len(cards) != model.DeckSize {
		return fmt.Errorf("%w: %d cards, want %d", common.ErrCatalogCorrupt, len(cards), model.DeckSize)
	}

	seen := make(map[int]bool, len(cards))
	for i := range cards {
		c := &cards[i]
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %v", common.ErrCatalogCorrupt, err)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: duplicate card id %d", common.ErrCatalogCorrupt, c.ID)
		}
		seen[c.ID] = true
	}

	// Every combo must point at a real card, and never at its own card.
	for i := range cards {
		for _, combo := range cards[i].Combos {
			if !seen[combo.WithCardID] {
				return fmt.Errorf("%w: card %d combo references unknown id %d", common.ErrCatalogCorrupt, cards[i].ID, combo.WithCardID)
			}
			if combo.WithCardID == cards[i].ID {
				return fmt.Errorf("%w: card %d combo references itself", common.ErrCatalogCorrupt, cards[i].ID)
			}
			if combo.Meaning == "" {
				return fmt.Errorf("%w: card %d combo with %d has no meaning", common.ErrCatalogCorrupt, cards[i].ID, combo.WithCardID)
			}
		}
	}

	return nil
}

// cards is the petit Lenormand catalog. Combos carry the traditional
// directional pair readings: the text belongs to the first card of the pair,
// and the reverse direction is curated separately when it differs.
var cards = []model.Card{
	{
		ID: 1, Name: "Rider", Number: 1,
		Keywords:        []string{"news", "messages", "arrival", "visitor"},
		Meaning:         "News is on its way; a message, visitor, or development arrives quickly.",
		ReversedMeaning: "Delayed or unwelcome news; a message that stalls in transit.",
		Combos: []model.Combo{
			{WithCardID: 24, Meaning: "a message of love or a romantic confession arrives"},
			{WithCardID: 27, Meaning: "an important letter or document is delivered"},
			{WithCardID: 6, Meaning: "confusing news that muddies the situation"},
		},
	},
	{
		ID: 2, Name: "Clover", Number: 2,
		Keywords:        []string{"luck", "opportunity", "small joy", "chance"},
		Meaning:         "A small stroke of luck or a light, fleeting opportunity presents itself.",
		ReversedMeaning: "A missed chance; luck that slips away if not seized at once.",
		Combos: []model.Combo{
			{WithCardID: 6, Meaning: "short-lived luck overshadowed by doubt"},
			{WithCardID: 34, Meaning: "an unexpected financial windfall"},
		},
	},
	{
		ID: 3, Name: "Ship", Number: 3,
		Keywords:        []string{"travel", "distance", "commerce", "departure"},
		Meaning:         "A journey, a change of scenery, or dealings that reach across distance.",
		ReversedMeaning: "Postponed travel; plans that drift without landing.",
		Combos: []model.Combo{
			{WithCardID: 35, Meaning: "a long voyage that ends in lasting stability"},
			{WithCardID: 4, Meaning: "a move or relocation of the household"},
			{WithCardID: 34, Meaning: "business abroad or income from far away"},
		},
	},
	{
		ID: 4, Name: "House", Number: 4,
		Keywords:        []string{"home", "family", "security", "foundation"},
		Meaning:         "Domestic life, family matters, and the stable ground you build on.",
		ReversedMeaning: "Unrest at home; a foundation that needs repair before building on it.",
		Combos: []model.Combo{
			{WithCardID: 18, Meaning: "a loyal household; family you can rely on"},
			{WithCardID: 10, Meaning: "an abrupt break within the family"},
		},
	},
	{
		ID: 5, Name: "Tree", Number: 5,
		Keywords:        []string{"health", "growth", "roots", "patience"},
		Meaning:         "Slow, deep growth; matters of health and things that take time to mature.",
		ReversedMeaning: "Stagnation or an ailment that lingers; growth is blocked at the root.",
		Combos: []model.Combo{
			{WithCardID: 31, Meaning: "vitality returns; a recovery gathering strength"},
			{WithCardID: 6, Meaning: "an unclear diagnosis or obscured health matter"},
		},
	},
	{
		ID: 6, Name: "Clouds", Number: 6,
		Keywords:        []string{"confusion", "doubt", "uncertainty", "ambiguity"},
		Meaning:         "Confusion clouds the matter; wait for the air to clear before judging.",
		ReversedMeaning: "The fog is lifting; clarity returns sooner than expected.",
		Combos: []model.Combo{
			{WithCardID: 31, Meaning: "trouble passes and the situation brightens"},
			{WithCardID: 33, Meaning: "the key insight is hidden but findable"},
		},
	},
	{
		ID: 7, Name: "Snake", Number: 7,
		Keywords:        []string{"deception", "complication", "detour", "rival"},
		Meaning:         "A complication or a person with their own agenda winds through the matter.",
		ReversedMeaning: "A deception unravels; the detour straightens out.",
		Combos: []model.Combo{
			{WithCardID: 24, Meaning: "jealousy or a rival in matters of the heart"},
			{WithCardID: 34, Meaning: "financial dealings that deserve a second look"},
		},
	},
	{
		ID: 8, Name: "Coffin", Number: 8,
		Keywords:        []string{"ending", "closure", "transformation", "rest"},
		Meaning:         "Something reaches its natural end, clearing space for what follows.",
		ReversedMeaning: "An ending resisted; letting go is harder than it needs to be.",
		Combos: []model.Combo{
			{WithCardID: 17, Meaning: "an ending that becomes a genuine transformation"},
			{WithCardID: 1, Meaning: "news of a closure or cancellation"},
		},
	},
	{
		ID: 9, Name: "Bouquet", Number: 9,
		Keywords:        []string{"gift", "invitation", "appreciation", "charm"},
		Meaning:         "A gift, invitation, or gesture of appreciation brightens the picture.",
		ReversedMeaning: "A hollow compliment; generosity with strings attached.",
		Combos: []model.Combo{
			{WithCardID: 1, Meaning: "an invitation arrives"},
			{WithCardID: 24, Meaning: "courtship; affection openly expressed"},
		},
	},
	{
		ID: 10, Name: "Scythe", Number: 10,
		Keywords:        []string{"cut", "sudden", "decision", "harvest"},
		Meaning:         "A swift cut: a sudden decision, separation, or harvest that cannot be undone.",
		ReversedMeaning: "A narrowly avoided rupture; the blade passes close but does not land.",
		Combos: []model.Combo{
			{WithCardID: 25, Meaning: "a contract or commitment abruptly severed"},
			{WithCardID: 5, Meaning: "a health matter needing prompt attention"},
		},
	},
	{
		ID: 11, Name: "Whip", Number: 11,
		Keywords:        []string{"conflict", "repetition", "argument", "friction"},
		Meaning:         "Friction and repeated strife; an argument that keeps circling back.",
		ReversedMeaning: "A quarrel burns out; the cycle of conflict loosens its grip.",
		Combos: []model.Combo{
			{WithCardID: 12, Meaning: "heated words; gossip that stings"},
		},
	},
	{
		ID: 12, Name: "Birds", Number: 12,
		Keywords:        []string{"conversation", "gossip", "nervousness", "pair"},
		Meaning:         "Talk fills the air: conversations, phone calls, and nervous chatter.",
		ReversedMeaning: "Idle gossip dies down; anxious chatter quiets.",
		Combos: []model.Combo{
			{WithCardID: 28, Meaning: "a talkative man or a conversation with him"},
			{WithCardID: 29, Meaning: "a talkative woman or a conversation with her"},
		},
	},
	{
		ID: 13, Name: "Child", Number: 13,
		Keywords:        []string{"beginning", "innocence", "small", "play"},
		Meaning:         "A fresh start, something small and new, or a childlike openness.",
		ReversedMeaning: "Naivety that invites trouble; a start that stays immature.",
		Combos: []model.Combo{
			{WithCardID: 16, Meaning: "a new venture blessed with good prospects"},
		},
	},
	{
		ID: 14, Name: "Fox", Number: 14,
		Keywords:        []string{"cunning", "work", "caution", "self-interest"},
		Meaning:         "Cleverness and self-interest; the daily job, or someone working an angle.",
		ReversedMeaning: "A trick exposed; misplaced suspicion dissolves.",
		Combos: []model.Combo{
			{WithCardID: 34, Meaning: "earnings from work; watch for sharp dealing"},
			{WithCardID: 18, Meaning: "a friend whose loyalty deserves testing"},
		},
	},
	{
		ID: 15, Name: "Bear", Number: 15,
		Keywords:        []string{"strength", "authority", "protection", "boss"},
		Meaning:         "Power and protection; a boss, elder, or your own commanding strength.",
		ReversedMeaning: "Authority overbearing; strength turned possessive.",
		Combos: []model.Combo{
			{WithCardID: 34, Meaning: "substantial money matters; an investor or provider"},
		},
	},
	{
		ID: 16, Name: "Stars", Number: 16,
		Keywords:        []string{"hope", "guidance", "inspiration", "clarity"},
		Meaning:         "Hope and guidance; a clear night sky to navigate by.",
		ReversedMeaning: "Wishing without aiming; guidance ignored.",
		Combos: []model.Combo{
			{WithCardID: 3, Meaning: "a guided journey; travel under a lucky star"},
			{WithCardID: 6, Meaning: "hope dimmed by doubt, but not extinguished"},
		},
	},
	{
		ID: 17, Name: "Stork", Number: 17,
		Keywords:        []string{"change", "movement", "improvement", "migration"},
		Meaning:         "A welcome change or relocation; circumstances migrate toward better ground.",
		ReversedMeaning: "A change postponed; restlessness without movement.",
		Combos: []model.Combo{
			{WithCardID: 4, Meaning: "a change of residence"},
		},
	},
	{
		ID: 18, Name: "Dog", Number: 18,
		Keywords:        []string{"friendship", "loyalty", "trust", "companion"},
		Meaning:         "A loyal friend or trustworthy companion stands by the matter.",
		ReversedMeaning: "Loyalty strained; a friendship that asks more than it gives.",
		Combos: []model.Combo{
			{WithCardID: 24, Meaning: "friendship deepening into love"},
			{WithCardID: 7, Meaning: "a false friend; loyalty worn as a disguise"},
		},
	},
	{
		ID: 19, Name: "Tower", Number: 19,
		Keywords:        []string{"institution", "solitude", "ambition", "boundary"},
		Meaning:         "An institution, an official matter, or a period of standing apart.",
		ReversedMeaning: "Isolation softens; bureaucracy loosens its grip.",
		Combos: []model.Combo{
			{WithCardID: 27, Meaning: "official correspondence or legal papers"},
		},
	},
	{
		ID: 20, Name: "Garden", Number: 20,
		Keywords:        []string{"public", "society", "gathering", "network"},
		Meaning:         "The public sphere: gatherings, networks, and matters played out openly.",
		ReversedMeaning: "Withdrawal from the crowd; a gathering postponed.",
		Combos: []model.Combo{
			{WithCardID: 1, Meaning: "a public announcement"},
			{WithCardID: 9, Meaning: "a celebration or social invitation"},
		},
	},
	{
		ID: 21, Name: "Mountain", Number: 21,
		Keywords:        []string{"obstacle", "delay", "blockage", "endurance"},
		Meaning:         "A heavy obstacle; progress demands patience or a way around.",
		ReversedMeaning: "The blockage erodes; a path over the pass opens.",
		Combos: []model.Combo{
			{WithCardID: 33, Meaning: "the obstacle has a key; a solution exists"},
			{WithCardID: 3, Meaning: "a journey delayed or rerouted"},
		},
	},
	{
		ID: 22, Name: "Crossroads", Number: 22,
		Keywords:        []string{"choice", "decision", "alternatives", "fork"},
		Meaning:         "A fork in the road; more than one path is genuinely open.",
		ReversedMeaning: "A choice avoided becomes a choice made by default.",
		Combos: []model.Combo{
			{WithCardID: 16, Meaning: "a choice guided toward the hopeful path"},
			{WithCardID: 6, Meaning: "a decision fogged by uncertainty"},
		},
	},
	{
		ID: 23, Name: "Mice", Number: 23,
		Keywords:        []string{"loss", "erosion", "worry", "theft"},
		Meaning:         "Something gnaws away quietly: small losses, worry, slow depletion.",
		ReversedMeaning: "The leak is found and stopped; what was slipping away is recovered.",
		Combos: []model.Combo{
			{WithCardID: 34, Meaning: "money quietly draining away"},
			{WithCardID: 5, Meaning: "health worn down by worry"},
		},
	},
	{
		ID: 24, Name: "Heart", Number: 24,
		Keywords:        []string{"love", "affection", "romance", "warmth"},
		Meaning:         "Love and affection; the heart of the matter is genuinely felt.",
		ReversedMeaning: "Affection cooled or unspoken; the heart guards itself.",
		Combos: []model.Combo{
			{WithCardID: 25, Meaning: "love moving toward commitment"},
			{WithCardID: 8, Meaning: "a love ending or a heart in mourning"},
			{WithCardID: 1, Meaning: "a declaration of love on its way"},
		},
	},
	{
		ID: 25, Name: "Ring", Number: 25,
		Keywords:        []string{"commitment", "contract", "cycle", "promise"},
		Meaning:         "A commitment, contract, or bond; something that binds and repeats.",
		ReversedMeaning: "A promise renegotiated; a bond that has become a loop.",
		Combos: []model.Combo{
			{WithCardID: 24, Meaning: "an engagement or deepening partnership"},
			{WithCardID: 10, Meaning: "a broken contract or dissolved agreement"},
		},
	},
	{
		ID: 26, Name: "Book", Number: 26,
		Keywords:        []string{"knowledge", "secret", "study", "research"},
		Meaning:         "Knowledge not yet opened: secrets, study, or information still closed.",
		ReversedMeaning: "A secret comes out; the book falls open.",
		Combos: []model.Combo{
			{WithCardID: 33, Meaning: "a secret unlocked; decisive information surfaces"},
			{WithCardID: 12, Meaning: "confidential talks"},
		},
	},
	{
		ID: 27, Name: "Letter", Number: 27,
		Keywords:        []string{"document", "writing", "correspondence", "record"},
		Meaning:         "Written matters: documents, emails, records, and formal correspondence.",
		ReversedMeaning: "Paperwork stalls; a reply is slow in coming.",
		Combos: []model.Combo{
			{WithCardID: 25, Meaning: "a written contract"},
			{WithCardID: 19, Meaning: "an official notice"},
		},
	},
	{
		ID: 28, Name: "Man", Number: 28,
		Keywords:        []string{"querent", "partner", "male figure", "significator"},
		Meaning:         "A significant man in the reading; the querent himself or a key male figure.",
		Combos: []model.Combo{
			{WithCardID: 24, Meaning: "a man in love or matters close to his heart"},
		},
	},
	{
		ID: 29, Name: "Woman", Number: 29,
		Keywords:        []string{"querent", "partner", "female figure", "significator"},
		Meaning:         "A significant woman in the reading; the querent herself or a key female figure.",
		Combos: []model.Combo{
			{WithCardID: 24, Meaning: "a woman in love or matters close to her heart"},
		},
	},
	{
		ID: 30, Name: "Lily", Number: 30,
		Keywords:        []string{"peace", "maturity", "wisdom", "winter"},
		Meaning:         "Calm, maturity, and hard-won peace; matters of age and long experience.",
		ReversedMeaning: "Discord beneath a calm surface; experience ignored.",
		Combos: []model.Combo{
			{WithCardID: 4, Meaning: "a peaceful, settled home"},
		},
	},
	{
		ID: 31, Name: "Sun", Number: 31,
		Keywords:        []string{"success", "energy", "victory", "warmth"},
		Meaning:         "Success shines on the matter; energy, victory, and visible warmth.",
		ReversedMeaning: "A clouded triumph; success delayed but not denied.",
		Combos: []model.Combo{
			{WithCardID: 24, Meaning: "a joyful, flourishing love"},
			{WithCardID: 34, Meaning: "financial success"},
		},
	},
	{
		ID: 32, Name: "Moon", Number: 32,
		Keywords:        []string{"emotion", "intuition", "recognition", "dreams"},
		Meaning:         "Feelings, intuition, and reputation; the matter is sensed before it is seen.",
		ReversedMeaning: "Moods distort the picture; recognition withheld.",
		Combos: []model.Combo{
			{WithCardID: 31, Meaning: "honors and recognition arriving in full light"},
		},
	},
	{
		ID: 33, Name: "Key", Number: 33,
		Keywords:        []string{"solution", "certainty", "breakthrough", "yes"},
		Meaning:         "The key fits: a solution, a breakthrough, a definite yes.",
		Combos: []model.Combo{
			{WithCardID: 21, Meaning: "the obstacle yields; the way through is found"},
			{WithCardID: 26, Meaning: "hidden knowledge unlocked"},
		},
	},
	{
		ID: 34, Name: "Fish", Number: 34,
		Keywords:        []string{"money", "abundance", "business", "flow"},
		Meaning:         "Money and abundance in motion; business, income, and resources that flow.",
		ReversedMeaning: "Cash flow tightens; abundance requires active tending.",
		Combos: []model.Combo{
			{WithCardID: 3, Meaning: "profitable ventures at a distance"},
			{WithCardID: 23, Meaning: "financial losses from neglect"},
		},
	},
	{
		ID: 35, Name: "Anchor", Number: 35,
		Keywords:        []string{"stability", "persistence", "work", "harbor"},
		Meaning:         "Stability and holding fast; long-term work that anchors the matter.",
		ReversedMeaning: "Stuck rather than stable; an anchor that has become a weight.",
		Combos: []model.Combo{
			{WithCardID: 24, Meaning: "a steadfast, enduring love"},
			{WithCardID: 3, Meaning: "a safe arrival after a long passage"},
		},
	},
	{
		ID: 36, Name: "Cross", Number: 36,
		Keywords:        []string{"burden", "duty", "trial", "faith"},
		Meaning:         "A burden carried as duty; a trial that tests and ultimately defines.",
		ReversedMeaning: "The burden lightens; a trial nears its end.",
		Combos: []model.Combo{
			{WithCardID: 31, Meaning: "suffering gives way to triumph"},
			{WithCardID: 5, Meaning: "a long trial of health or endurance"},
		},
	},
}

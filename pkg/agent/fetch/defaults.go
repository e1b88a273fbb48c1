package fetch

// DefaultTextThemes is served as the text themes list and is the theme corpus
// for text question prompts.
var DefaultTextThemes = []string{
	"Love and relationships",
	"Nature and environment",
	"Art and creativity",
	"Technology and innovation",
	"Health and wellness",
	"History and culture",
	"Science and discovery",
	"Philosophy and ethics",
	"Education and learning",
	"Music and rhythm",
	"Sports and athleticism",
	"Food and nutrition",
	"Travel and adventure",
	"Fashion and style",
	"Books and literature",
	"Movies and entertainment",
	"Politics and governance",
	"Business and entrepreneurship",
	"Mind and consciousness",
	"Family and parenting",
	"Social media and networking",
	"Religion and spirituality",
	"Money and finance",
	"Language and communication",
	"Space and astronomy",
	"Mathematics and logic",
	"Economics and markets",
	"Psychology and behavior",
	"Law and justice",
	"Engineering and design",
}

var DefaultImageThemes = []string{
	"The Inner Journey",
	"Dreams and Shadows",
	"Urban Solitude",
	"Celestial Bodies",
	"Mystic Forests",
	"Forgotten Ruins",
	"Ocean Depths",
	"Mechanical Wonders",
	"Festivals of Light",
	"Ancient Mythology",
	"Seasons of Change",
	"Whispers of Wind",
	"Frozen Landscapes",
	"Neon Nights",
	"Desert Mirage",
	"Hidden Gardens",
	"Clockwork Cities",
	"Wildlife Portraits",
	"Surreal Architecture",
	"Stormy Horizons",
}

var DefaultTextQuestions = []string{
	"Explain the concept of photosynthesis and its importance to life on Earth.",
	"Describe the main causes and consequences of the Industrial Revolution.",
	"What are the key differences between classical and operant conditioning?",
	"Write a short story about a lighthouse keeper who finds a message in a bottle.",
	"How does compound interest work, and why does it matter for long-term savings?",
	"Summarize the plot and major themes of a well-known Shakespeare tragedy.",
	"Explain how vaccines train the immune system to recognize pathogens.",
	"Compare the economic systems of capitalism and socialism.",
	"What are the ethical implications of artificial intelligence in healthcare?",
	"Describe the water cycle and the role each stage plays in climate.",
	"Give practical tips for improving sleep quality.",
	"Explain the difference between weather and climate with examples.",
	"How do black holes form, and what happens at the event horizon?",
	"Outline the steps of the scientific method and why each one matters.",
	"Write a persuasive paragraph on the value of learning a second language.",
}

var DefaultImageQuestions = []string{
	"A lighthouse on a cliff during a violent storm at night",
	"A quiet street in Kyoto covered in cherry blossoms at dawn",
	"An astronaut tending a vegetable garden on Mars",
	"A medieval market bustling with merchants and travelers",
	"A futuristic city skyline reflected in a rain-soaked street",
	"A fox curled up asleep in a snowy pine forest",
	"An underwater palace lit by bioluminescent jellyfish",
	"A steam locomotive crossing a stone bridge in autumn",
	"A desert caravan under a sky full of shooting stars",
	"A cozy library inside a giant hollow tree",
	"A hot air balloon festival over rolling green hills",
	"A robot painting a portrait in a sunlit studio",
	"An ancient temple overgrown by jungle vines",
	"A frozen waterfall glowing under the northern lights",
	"A floating island with waterfalls spilling into the clouds",
}

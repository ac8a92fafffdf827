package sources

// DefaultSources is the curated list of news agency feeds, grouped by
// country. Used when no sources file is configured.
var DefaultSources = []Source{
	// India
	{URL: "https://timesofindia.indiatimes.com/rssfeeds/-2128936835.cms", Agency: "Times of India", Country: "India"},
	{URL: "https://www.thehindu.com/news/national/feeder/default.rss", Agency: "The Hindu", Country: "India"},
	{URL: "https://indianexpress.com/section/india/feed/", Agency: "Indian Express", Country: "India"},
	{URL: "https://www.ndtv.com/feeds/latest", Agency: "NDTV", Country: "India"},
	{URL: "https://www.hindustantimes.com/feeds/rss", Agency: "Hindustan Times", Country: "India"},

	// USA
	{URL: "http://rss.cnn.com/rss/edition.rss", Agency: "CNN", Country: "USA"},
	{URL: "https://feeds.npr.org/1001/rss.xml", Agency: "NPR", Country: "USA"},
	{URL: "https://www.nytimes.com/services/xml/rss/nyt/HomePage.xml", Agency: "New York Times", Country: "USA"},
	{URL: "https://www.foxnews.com/about/rss/", Agency: "Fox News", Country: "USA"},

	// UK
	{URL: "http://feeds.bbci.co.uk/news/rss.xml", Agency: "BBC News", Country: "UK"},
	{URL: "https://www.theguardian.com/uk/rss", Agency: "The Guardian", Country: "UK"},
	{URL: "https://www.telegraph.co.uk/rss.xml", Agency: "The Telegraph", Country: "UK"},

	// Qatar
	{URL: "https://www.aljazeera.com/xml/rss/all.xml", Agency: "Al Jazeera", Country: "Qatar"},

	// Germany
	{URL: "https://rss.dw.com/rdf/rss-en-all", Agency: "Deutsche Welle", Country: "Germany"},
	{URL: "https://www.spiegel.de/international/index.rss", Agency: "Der Spiegel", Country: "Germany"},

	// France
	{URL: "https://www.france24.com/en/rss", Agency: "France 24", Country: "France"},
	{URL: "https://www.lemonde.fr/rss/une.xml", Agency: "Le Monde", Country: "France"},

	// Japan
	{URL: "https://www3.nhk.or.jp/rss/news/cat0.xml", Agency: "NHK", Country: "Japan"},
	{URL: "https://www.japantimes.co.jp/feed/", Agency: "Japan Times", Country: "Japan"},

	// Australia
	{URL: "https://www.abc.net.au/news/feed/51120/rss.xml", Agency: "ABC News", Country: "Australia"},
	{URL: "https://www.smh.com.au/rss/feed.xml", Agency: "Sydney Morning Herald", Country: "Australia"},

	// Singapore
	{URL: "https://www.channelnewsasia.com/rssfeeds/8395986", Agency: "CNA", Country: "Singapore"},
	{URL: "https://www.straitstimes.com/news/world/rss.xml", Agency: "Straits Times", Country: "Singapore"},

	// South Africa
	{URL: "https://www.news24.com/news24/rss", Agency: "News24", Country: "South Africa"},

	// New Zealand
	{URL: "https://www.stuff.co.nz/rss", Agency: "Stuff", Country: "New Zealand"},
}

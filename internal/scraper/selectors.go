package scraper

// x.com DOM selectors. The site changes its markup often; when scraping
// breaks, start here.
const (
	// Profile page
	UserNameContainer = `div[data-testid="UserName"]`
	DisplayName       = `span span`
	HandleCandidates  = `span`
	UserDescription   = `div[data-testid="UserDescription"]`
	AvatarContainer   = `div[data-testid^="UserAvatar-Container"]`
	ExpandedAvatarImg = `div[aria-label="Image"] img`

	// Timeline
	PostArticle  = `article[data-testid="tweet"]`
	PostText     = `div[data-testid="tweetText"]`
	PostTime     = `time`
	ReplyButton  = `button[data-testid="reply"]`
	RepostButton = `button[data-testid="retweet"]`
	LikeButton   = `button[data-testid="like"]`
	ViewsLink    = `a[aria-label*="views."]`
)

const handlePrefix = "@"

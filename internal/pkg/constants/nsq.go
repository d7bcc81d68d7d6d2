package constants

// NSQ topics and channels
const (
	TopicEmail           = "banking.email"
	ChannelEmailNotifier = "notifier"
)

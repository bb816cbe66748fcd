package dto

// PaymentNotification holds the raw callback parameters. Integer fields
// stay strings until the notification handler validates them.
type PaymentNotification struct {
	Module             string `query:"md" form:"md"`
	QFKey              string `query:"qfKey" form:"qfKey"`
	ContributionID     string `query:"contributionID" form:"contributionID"`
	ContactID          string `query:"contactID" form:"contactID"`
	EventID            string `query:"eventID" form:"eventID"`
	ParticipantID      string `query:"participantID" form:"participantID"`
	MembershipID       string `query:"membershipID" form:"membershipID"`
	ContributionPageID string `query:"contributionPageID" form:"contributionPageID"`
	RelatedContactID   string `query:"relatedContactID" form:"relatedContactID"`
	OnBehalfDupeAlert  string `query:"onBehalfDupeAlert" form:"onBehalfDupeAlert"`
	ReturnURL          string `query:"returnURL" form:"returnURL"`
}

type NotificationResult struct {
	ContributionID   int64
	AlreadyCompleted bool
	RedirectURL      string
}

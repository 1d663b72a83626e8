package client

import "time"

type Clients struct {
	*QuestionsAPI
}

func InitClients(questionsSource string, timeout time.Duration) Clients {
	return Clients{
		QuestionsAPI: NewQuestionsAPI(questionsSource, timeout),
	}
}

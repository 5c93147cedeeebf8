// Package jobs provides scheduled background tasks for the bookshop.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// DeliveryCompletionJob completes the delivery of every placed order that has
// waited longer than the shipping delay. Once its delivery is completed an
// order can no longer be cancelled.
//
// # Usage
//
//	job := jobs.NewDeliveryCompletionJob(handler, "*/30 * * * * *", 24*time.Hour, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Having no deliveries to complete is an expected outcome and is not logged
// as an error. A job that fails to start makes StartAll stop the jobs that
// were already started.
package jobs

package handlers

import (
	"errors"
	"net/http"
	"testing"

	"tasklist-web/internal/graph"
	"tasklist-web/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestTasksHandler_ShouldDefaultToOwnTasks(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/tasks")
	defer tc.Finish()

	tc.SignInVisitor("ada@example.com")
	tc.ExpectMe(&graph.User{ID: "u1", Name: "Ada"}, nil)
	tc.MockGraph.EXPECT().
		TasksByCreator(gomock.Any(), "u1").
		Return([]graph.Task{{ID: "t1", Name: "groceries"}}, nil)

	tc.CallHandler(GETTasksHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
}

func TestTasksHandler_ShouldHonorCreatorParam(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/tasks")
	defer tc.Finish()

	tc.WithQueryParam("creator", "u2")
	tc.MockGraph.EXPECT().
		TasksByCreator(gomock.Any(), "u2").
		Return([]graph.Task{}, nil)

	tc.CallHandler(GETTasksHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestTaskHandler_ShouldFetchByID(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/tasks/t1")
	defer tc.Finish()

	tc.WithURLParam("taskID", "t1")
	tc.MockGraph.EXPECT().
		Task(gomock.Any(), "t1").
		Return(&graph.Task{ID: "t1", Name: "groceries", Tags: []string{"errand"}}, nil)

	tc.CallHandler(GETTaskHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestTaskCreateHandler_ShouldReturnNewID(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/tasks")
	defer tc.Finish()

	tc.MockGraph.EXPECT().CreateTask(gomock.Any()).Return("t9", nil)

	tc.CallHandler(POSTTaskHandler)

	tc.AssertStatus(t, http.StatusCreated)
	tc.AssertJSONString(t, "id", "t9")
}

func TestTaskNameHandler_ShouldRename(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "PUT", "/api/tasks/t1/name")
	defer tc.Finish()

	tc.WithBody(t, "PUT", "/api/tasks/t1/name", SetNameRequest{Name: "new name"})
	tc.WithURLParam("taskID", "t1")
	tc.MockGraph.EXPECT().SetTaskName(gomock.Any(), "t1", "new name").Return(nil)

	tc.CallHandler(PUTTaskNameHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestTaskTagHandlers_ShouldAddAndRemove(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/tasks/t1/tags")
	defer tc.Finish()

	tc.WithBody(t, "POST", "/api/tasks/t1/tags", TagRequest{Tag: "urgent"})
	tc.WithURLParam("taskID", "t1")
	tc.MockGraph.EXPECT().AddTaskTag(gomock.Any(), "t1", "urgent").Return(nil)

	tc.CallHandler(POSTTaskTagHandler)
	tc.AssertStatus(t, http.StatusOK)

	tc2 := testutil.NewTestContextWithURL(t, "DELETE", "/api/tasks/t1/tags/urgent")
	defer tc2.Finish()

	tc2.WithURLParam("taskID", "t1")
	tc2.WithURLParam("tag", "urgent")
	tc2.MockGraph.EXPECT().RemoveTaskTag(gomock.Any(), "t1", "urgent").Return(nil)

	tc2.CallHandler(DELETETaskTagHandler)
	tc2.AssertStatus(t, http.StatusOK)
}

func TestTaskDeleteHandler_ShouldAnswerBadGatewayOnFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "DELETE", "/api/tasks/t1")
	defer tc.Finish()

	tc.WithURLParam("taskID", "t1")
	tc.MockGraph.EXPECT().
		DeleteTask(gomock.Any(), "t1").
		Return(errors.New("backend unreachable"))

	tc.CallHandler(DELETETaskHandler)

	tc.AssertStatus(t, http.StatusBadGateway)
}

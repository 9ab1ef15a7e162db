package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rhyrak/wolf-scheduler/internal/logger"
	"github.com/rhyrak/wolf-scheduler/internal/scheduler"
	"github.com/rhyrak/wolf-scheduler/pkg/model"
)

const validRecords = `CSC 116,Intro to Programming - Java,001,3,jdyoung2,MW,910,1100
CSC 116,Intro to Programming - Java,002,3,spbalik,MW,1120,1310
CSC 216,Software Engineering,001,3,sesmith5,TH,1330,1445
CSC 226,Discrete Mathematics for Computer Scientists,601,3,tmbarnes,Arranged
CSC 230,C and Software Tools,001,3,dbsturgi,A
`

type csvioSuite struct {
	suite.Suite
	store *Store
	dir   string
}

func TestCSVIOSuite(t *testing.T) {
	suite.Run(t, new(csvioSuite))
}

func (s *csvioSuite) SetupTest() {
	s.store = NewStore(',')
	s.dir = s.T().TempDir()
}

func (s *csvioSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *csvioSuite) TestReadValidRecords() {
	courses, err := s.store.ReadCourseRecords(s.writeFile("valid.txt", validRecords))
	s.Require().NoError(err)
	s.Require().Len(courses, 5)

	s.Equal("CSC 116", courses[0].Name())
	s.Equal("MW 9:10AM-11:00AM", courses[0].MeetingString())
	s.Equal("002", courses[1].Section())
	s.True(courses[3].IsArranged())
	s.Equal(model.Arranged, courses[4].MeetingDays())
	s.Equal("CSC 230,C and Software Tools,001,3,dbsturgi,Arranged", courses[4].String())
}

func (s *csvioSuite) TestReadSkipsMalformedRecords() {
	content := strings.Join([]string{
		"CSC 116,Intro to Programming - Java,001,3,jdyoung2,MW,910,1100",
		"CSC116,No Space,001,3,jdyoung2,MW,910,1100",
		"CSC 216,Too Many Credits,001,9,sesmith5,TH,1330,1445",
		"CSC 216,Repeated Day,001,3,sesmith5,TT,1330,1445",
		"CSC 216,Missing Times,001,3,sesmith5,TH",
		"CSC 226,Arranged With Times,601,3,tmbarnes,Arranged,0,0",
		"CSC 226,Bad Credits,601,three,tmbarnes,Arranged",
		"CSC 226,Empty Credits,601,,tmbarnes,Arranged",
		"CSC 216,Empty Times,001,3,sesmith5,MW,,",
		"CSC 216,Empty End Time,001,3,sesmith5,MW,1330,",
		"CSC 226,Too Short,601",
		"CSC 316,Too Long,001,3,jtking,MW,1000,1100,extra",
		"",
		"CSC 316,Data Structures and Algorithms,001,3,jtking,MW,1000,1100",
	}, "\n")

	courses, err := s.store.ReadCourseRecords(s.writeFile("mixed.txt", content))
	s.Require().NoError(err)
	s.Require().Len(courses, 2)
	s.Equal("CSC 116", courses[0].Name())
	s.Equal("CSC 316", courses[1].Name())
}

func (s *csvioSuite) TestReadDecimalNumbers() {
	content := strings.Join([]string{
		"CSC 216,Software Engineering,001,3,sesmith5,MW,0700,1000",
		"CSC 217,Software Engineering Lab,201,01,sesmith5,H,0830,0945",
		"CSC 226,Hex Credits,601,0x3,tmbarnes,Arranged",
		"CSC 230,Hex Start,001,3,dbsturgi,MW,0x10,1000",
		"CSC 316,Data Structures and Algorithms,001,3,jtking,MW,0900,1000",
	}, "\n")

	courses, err := s.store.ReadCourses(strings.NewReader(content))
	s.Require().NoError(err)
	s.Require().Len(courses, 3)

	s.Equal(700, courses[0].StartTime())
	s.Equal("MW 7:00AM-10:00AM", courses[0].MeetingString())
	s.Equal(1, courses[1].Credits())
	s.Equal(830, courses[1].StartTime())
	s.Equal("H 8:30AM-9:45AM", courses[1].MeetingString())
	s.Equal("CSC 316", courses[2].Name())
	s.Equal(900, courses[2].StartTime())
}

func (s *csvioSuite) TestReadLogsFileLine() {
	var logs bytes.Buffer
	logger.Configure(logger.Config{Level: "warn", Output: &logs})
	s.T().Cleanup(func() {
		logger.Configure(logger.Config{Level: "info", Pretty: true})
	})

	content := strings.Join([]string{
		`CSC 116,"Intro to Programming` + "\n" + `- Java",001,3,jdyoung2,MW,910,1100`,
		"",
		"CSC116,No Space,001,3,jdyoung2,MW,910,1100",
	}, "\n")

	courses, err := s.store.ReadCourses(strings.NewReader(content))
	s.Require().NoError(err)
	s.Len(courses, 1)
	s.Contains(logs.String(), `"line":4`)
	s.Contains(logs.String(), `"field":"name"`)
}

func (s *csvioSuite) TestReadMissingFile() {
	_, err := s.store.ReadCourseRecords(filepath.Join(s.dir, "missing.txt"))
	s.Error(err)
}

func (s *csvioSuite) TestReadEmptyFile() {
	courses, err := s.store.ReadCourseRecords(s.writeFile("empty.txt", ""))
	s.Require().NoError(err)
	s.NotNil(courses)
	s.Empty(courses)
}

func (s *csvioSuite) TestReadCustomDelimiter() {
	store := NewStore(';')
	courses, err := store.ReadCourses(strings.NewReader("CSC 216;Software Engineering, Part 1;001;3;sesmith5;TH;1330;1445\n"))
	s.Require().NoError(err)
	s.Require().Len(courses, 1)
	s.Equal("Software Engineering, Part 1", courses[0].Title())
}

func (s *csvioSuite) TestWriteCourseRecords() {
	courses, err := s.store.ReadCourses(strings.NewReader(validRecords))
	s.Require().NoError(err)

	path := filepath.Join(s.dir, "out.txt")
	s.Require().NoError(s.store.WriteCourseRecords(path, courses[2:4]))

	content, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("CSC 216,Software Engineering,001,3,sesmith5,TH,1330,1445\n"+
		"CSC 226,Discrete Mathematics for Computer Scientists,601,3,tmbarnes,Arranged\n", string(content))

	reread, err := s.store.ReadCourseRecords(path)
	s.Require().NoError(err)
	s.Require().Len(reread, 2)
	s.True(courses[2].Equal(reread[0]))
	s.True(courses[3].Equal(reread[1]))
}

func (s *csvioSuite) TestWriteUnwritableDestination() {
	err := s.store.WriteCourseRecords(filepath.Join(s.dir, "missing", "out.txt"), nil)
	s.Error(err)
}

func (s *csvioSuite) TestSchedulerThroughStore() {
	sched, err := scheduler.New(s.writeFile("catalog.txt", validRecords), s.store)
	s.Require().NoError(err)

	added, err := sched.AddCourseToSchedule("CSC 116", "002")
	s.Require().NoError(err)
	s.True(added)

	_, err = sched.AddCourseToSchedule("CSC 116", "001")
	s.Error(err)

	path := filepath.Join(s.dir, "schedule.txt")
	s.Require().NoError(sched.ExportSchedule(path))
	content, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("CSC 116,Intro to Programming - Java,002,3,spbalik,MW,1120,1310\n", string(content))

	s.ErrorIs(sched.ExportSchedule(s.dir), scheduler.ErrCannotSave)

	_, err = scheduler.New(filepath.Join(s.dir, "missing.txt"), s.store)
	s.ErrorIs(err, scheduler.ErrSourceUnavailable)
}

func (s *csvioSuite) TestExportScheduleTable() {
	courses, err := s.store.ReadCourses(strings.NewReader(validRecords))
	s.Require().NoError(err)

	str, err := ExportScheduleString(courses[2:4])
	s.Require().NoError(err)
	s.Equal("name,section,title,credits,instructor,meeting\n"+
		"CSC 216,001,Software Engineering,3,sesmith5,TH 1:30PM-2:45PM\n"+
		"CSC 226,601,Discrete Mathematics for Computer Scientists,3,tmbarnes,Arranged\n", str)

	path := filepath.Join(s.dir, "table.csv")
	s.Require().NoError(ExportScheduleTable(courses[2:4], path))
	content, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal(str, string(content))
}

func (s *csvioSuite) TestPrintSchedule() {
	courses, err := s.store.ReadCourses(strings.NewReader(validRecords))
	s.Require().NoError(err)

	var buf bytes.Buffer
	PrintSchedule(&buf, "Fall Plan", []*model.Course{courses[2], courses[0]})
	out := buf.String()

	s.Contains(out, "Fall Plan")
	s.Contains(out, "MEETING")
	s.Contains(out, "TH 1:30PM-2:45PM")
	s.Contains(out, "Credits: 6")
	s.Less(strings.Index(out, "CSC 116"), strings.Index(out, "CSC 216"))
}

func (s *csvioSuite) TestPrintCatalog() {
	var buf bytes.Buffer
	PrintCatalog(&buf, [][]string{{"CSC 216", "001", "Software Engineering"}})
	s.Contains(buf.String(), "Software Engineering")
	s.Contains(buf.String(), "Courses: 1")
}

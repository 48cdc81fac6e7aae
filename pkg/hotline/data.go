package hotline

// directory is the built-in reference table. It is never mutated at runtime;
// a CMS-managed overlay may add or replace entries at startup, but when that
// overlay fails this table stands on its own.
var directory = []Entry{
	{Key: "us", Country: "United States", Emergency: "911", Crisis: "988", Service: "Suicide & Crisis Lifeline"},
	{Key: "algeria", Country: "Algeria", Emergency: "34342 and 43", Crisis: "0021 3983 2000 58"},
	{Key: "angola", Country: "Angola", Emergency: "113"},
	{Key: "argentina", Country: "Argentina", Emergency: "911", Crisis: "135"},
	{Key: "armenia", Country: "Armenia", Emergency: "911 and 112", Crisis: "(2) 538194"},
	{Key: "australia", Country: "Australia", Emergency: "000", Crisis: "131114"},
	{Key: "austria", Country: "Austria", Emergency: "112", Crisis: "142", Service: "Telefonseelsorge"},
	{Key: "bahamas", Country: "Bahamas", Emergency: "911", Crisis: "(2) 322-2763"},
	{Key: "bahrain", Country: "Bahrain", Emergency: "999"},
	{Key: "bangladesh", Country: "Bangladesh", Emergency: "999"},
	{Key: "barbados", Country: "Barbados", Emergency: "911", Crisis: "(246) 4299999", Service: "Samaritan Barbados"},
	{Key: "belgium", Country: "Belgium", Emergency: "112", Crisis: "1813", Service: "Stichting Zelfmoordlijn"},
	{Key: "bolivia", Country: "Bolivia", Emergency: "911", Crisis: "3911270"},
	{Key: "bosnia", Country: "Bosnia & Herzegovina", Crisis: "080 05 03 05"},
	{Key: "botswana", Country: "Botswana", Emergency: "911", Crisis: "+2673911270"},
	{Key: "brazil", Country: "Brazil", Emergency: "188"},
	{Key: "bulgaria", Country: "Bulgaria", Emergency: "112", Crisis: "0035 9249 17 223"},
	{Key: "burundi", Country: "Burundi", Emergency: "117"},
	{Key: "burkina", Country: "Burkina Faso", Emergency: "17"},
	{Key: "canada", Country: "Canada", Emergency: "911", Crisis: "988"},
	{Key: "chad", Country: "Chad", Emergency: "2251-1237"},
	{Key: "china", Country: "China", Emergency: "110", Crisis: "800-810-1117"},
	{Key: "colombia", Country: "Colombia", Crisis: "(57-1) 323 24 25", Service: "Bogota Hotline"},
	{Key: "congo", Country: "Congo", Emergency: "117"},
	{Key: "costa-rica", Country: "Costa Rica", Emergency: "911", Crisis: "506-253-5439"},
	{Key: "croatia", Country: "Croatia", Emergency: "112"},
	{Key: "cyprus", Country: "Cyprus", Emergency: "112", Crisis: "8000 7773"},
	{Key: "czech", Country: "Czech Republic", Emergency: "112"},
	{Key: "denmark", Country: "Denmark", Emergency: "112", Crisis: "4570201201"},
	{Key: "dominican", Country: "Dominican Republic", Emergency: "911", Crisis: "(809) 562-3500"},
	{Key: "ecuador", Country: "Ecuador", Emergency: "911"},
	{Key: "egypt", Country: "Egypt", Emergency: "122", Crisis: "131114"},
	{Key: "el-salvador", Country: "El Salvador", Emergency: "911", Crisis: "126"},
	{Key: "equatorial", Country: "Equatorial Guinea", Emergency: "114"},
	{Key: "estonia", Country: "Estonia", Emergency: "112", Crisis: "3726558088"},
	{Key: "ethiopia", Country: "Ethiopia", Emergency: "911"},
	{Key: "finland", Country: "Finland", Emergency: "112", Crisis: "010 195 202"},
	{Key: "france", Country: "France", Emergency: "112", Crisis: "0145394000"},
	{Key: "germany", Country: "Germany", Emergency: "112", Crisis: "0800 111 0 111"},
	{Key: "ghana", Country: "Ghana", Emergency: "999", Crisis: "2332 444 71279"},
	{Key: "greece", Country: "Greece", Emergency: "1018"},
	{Key: "guatemala", Country: "Guatemala", Emergency: "110", Crisis: "5392-5953"},
	{Key: "guinea", Country: "Guinea", Emergency: "117"},
	{Key: "guinea-bissau", Country: "Guinea Bissau", Emergency: "117"},
	{Key: "guyana", Country: "Guyana", Emergency: "999", Crisis: "223-0001"},
	{Key: "holland", Country: "Holland", Crisis: "09000767"},
	{Key: "hong-kong", Country: "Hong Kong", Emergency: "999", Crisis: "852 2382 0000"},
	{Key: "hungary", Country: "Hungary", Emergency: "112", Crisis: "116123"},
	{Key: "india", Country: "India", Emergency: "112", Crisis: "8888817666"},
	{Key: "indonesia", Country: "Indonesia", Emergency: "112", Crisis: "1-800-273-8255"},
	{Key: "iran", Country: "Iran", Emergency: "110", Crisis: "1480"},
	{Key: "ireland", Country: "Ireland", Emergency: "116123", Crisis: "+4408457909090"},
	{Key: "israel", Country: "Israel", Emergency: "100", Crisis: "1201"},
	{Key: "italy", Country: "Italy", Emergency: "112", Crisis: "800860022"},
	{Key: "jamaica", Country: "Jamaica", Crisis: "1-888-429-5273", Service: "KARE"},
	{Key: "japan", Country: "Japan", Emergency: "110", Crisis: "810352869090"},
	{Key: "jordan", Country: "Jordan", Emergency: "911", Crisis: "110"},
	{Key: "kenya", Country: "Kenya", Emergency: "999", Crisis: "722178177"},
	{Key: "kuwait", Country: "Kuwait", Emergency: "112", Crisis: "94069304"},
	{Key: "latvia", Country: "Latvia", Emergency: "113", Crisis: "371 67222922"},
	{Key: "lebanon", Country: "Lebanon", Crisis: "1564"},
	{Key: "liberia", Country: "Liberia", Emergency: "911", Crisis: "6534308"},
	{Key: "lithuania", Country: "Lithuania", Emergency: "112", Crisis: "8 800 28888"},
	{Key: "luxembourg", Country: "Luxembourg", Emergency: "112", Crisis: "352 45 45 45"},
	{Key: "madagascar", Country: "Madagascar", Emergency: "117"},
	{Key: "malaysia", Country: "Malaysia", Emergency: "999", Crisis: "(06) 2842500"},
	{Key: "mali", Country: "Mali", Emergency: "8000-1115"},
	{Key: "malta", Country: "Malta", Crisis: "179"},
	{Key: "mauritius", Country: "Mauritius", Emergency: "112", Crisis: "+230 800 93 93"},
	{Key: "mexico", Country: "Mexico", Emergency: "911", Crisis: "5255102550"},
	{Key: "netherlands", Country: "Netherlands", Emergency: "112", Crisis: "900 0113"},
	{Key: "new-zealand", Country: "New Zealand", Emergency: "111", Crisis: "1737"},
	{Key: "niger", Country: "Niger", Emergency: "112"},
	{Key: "nigeria", Country: "Nigeria", Crisis: "234 8092106493"},
	{Key: "norway", Country: "Norway", Emergency: "112", Crisis: "+4781533300"},
	{Key: "pakistan", Country: "Pakistan", Emergency: "115"},
	{Key: "peru", Country: "Peru", Emergency: "911", Crisis: "381-3695"},
	{Key: "philippines", Country: "Philippines", Emergency: "911", Crisis: "028969191"},
	{Key: "poland", Country: "Poland", Emergency: "112", Crisis: "5270000"},
	{Key: "portugal", Country: "Portugal", Emergency: "112", Crisis: "21 854 07 40"},
	{Key: "qatar", Country: "Qatar", Emergency: "999"},
	{Key: "romania", Country: "Romania", Emergency: "112", Crisis: "0800 801200"},
	{Key: "russia", Country: "Russia", Emergency: "112", Crisis: "0078202577577"},
	{Key: "saint-vincent", Country: "Saint Vincent and the Grenadines", Crisis: "9784 456 1044"},
	{Key: "sao-tome", Country: "São Tomé and Príncipe", Crisis: "(239) 222-12-22 ext. 123"},
	{Key: "saudi", Country: "Saudi Arabia", Emergency: "112"},
	{Key: "serbia", Country: "Serbia", Crisis: "(+381) 21-6623-393"},
	{Key: "senegal", Country: "Senegal", Emergency: "17"},
	{Key: "singapore", Country: "Singapore", Emergency: "999", Crisis: "1 800 2214444"},
	{Key: "spain", Country: "Spain", Emergency: "112", Crisis: "914590050"},
	{Key: "south-africa", Country: "South Africa", Emergency: "10111", Crisis: "0514445691"},
	{Key: "south-korea", Country: "South Korea", Emergency: "112", Crisis: "(02) 7158600"},
	{Key: "sri-lanka", Country: "Sri Lanka", Crisis: "011 057 2222662"},
	{Key: "sudan", Country: "Sudan", Crisis: "(249) 11-555-253"},
	{Key: "sweden", Country: "Sweden", Emergency: "112", Crisis: "46317112400"},
	{Key: "switzerland", Country: "Switzerland", Emergency: "112", Crisis: "143"},
	{Key: "tanzania", Country: "Tanzania", Emergency: "112"},
	{Key: "thailand", Country: "Thailand", Crisis: "(02) 713-6793"},
	{Key: "tonga", Country: "Tonga", Crisis: "23000"},
	{Key: "trinidad", Country: "Trinidad and Tobago", Crisis: "(868) 645 2800"},
	{Key: "tunisia", Country: "Tunisia", Emergency: "197"},
	{Key: "turkey", Country: "Turkey", Emergency: "112"},
	{Key: "uganda", Country: "Uganda", Emergency: "112", Crisis: "0800 21 21 21"},
	{Key: "uae", Country: "United Arab Emirates", Crisis: "800 46342"},
	{Key: "uk", Country: "United Kingdom", Emergency: "999", Crisis: "0800 689 5652"},
	{Key: "zambia", Country: "Zambia", Emergency: "999", Crisis: "+260960264040"},
	{Key: "zimbabwe", Country: "Zimbabwe", Emergency: "999", Crisis: "080 12 333 333"},
}

// fallback is the minimal set the crisis alert always renders, even when the
// full directory or its CMS overlay is unavailable. The duplication with the
// table above is deliberate safety redundancy.
var fallback = []Entry{
	{Key: "india", Country: "India", Crisis: "+91 91529 87821", Service: "Vandrevala Foundation"},
	{Key: "us", Country: "United States", Crisis: "988", Service: "Suicide & Crisis Lifeline"},
	{Key: "global", Country: "Global", Service: "findahelpline.com", ReferralURL: "https://findahelpline.com"},
}
